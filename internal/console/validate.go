package console

import (
	"regexp"
	"strconv"
	"strings"
)

// Patterns match the arguments re-joined with single spaces.
var (
	transferPattern    = regexp.MustCompile(`^(\S+) ([1-9]\d*) (\S.*)$`)
	redPacketPattern   = regexp.MustCompile(`^([1-9]\d*) ([1-9]\d*)$`)
	secondsPattern     = regexp.MustCompile(`^[1-9]\d*$`)
	redPacketToPattern = regexp.MustCompile(`^([1-9]\d*) ([^\s,，]+(?:[,，][^\s,，]+)*)$`)
)

type TransferArgs struct {
	To     string
	Amount int
	Memo   string
}

// ParseTransfer accepts "<to> <amount> <memo...>".
func ParseTransfer(args []string) (TransferArgs, bool) {
	m := transferPattern.FindStringSubmatch(strings.Join(args, " "))
	if m == nil {
		return TransferArgs{}, false
	}
	amount, err := strconv.Atoi(m[2])
	if err != nil {
		return TransferArgs{}, false
	}
	return TransferArgs{To: m[1], Amount: amount, Memo: m[3]}, true
}

type RedPacketArgs struct {
	Money int
	Count int
}

// ParseRedPacket accepts "<amount> <count>".
func ParseRedPacket(args []string) (RedPacketArgs, bool) {
	m := redPacketPattern.FindStringSubmatch(strings.Join(args, " "))
	if m == nil {
		return RedPacketArgs{}, false
	}
	money, err := strconv.Atoi(m[1])
	if err != nil {
		return RedPacketArgs{}, false
	}
	count, err := strconv.Atoi(m[2])
	if err != nil {
		return RedPacketArgs{}, false
	}
	return RedPacketArgs{Money: money, Count: count}, true
}

// ParseSeconds accepts a single positive integer.
func ParseSeconds(args []string) (int, bool) {
	joined := strings.Join(args, " ")
	if !secondsPattern.MatchString(joined) {
		return 0, false
	}
	seconds, err := strconv.Atoi(joined)
	if err != nil {
		return 0, false
	}
	return seconds, true
}

type RedPacketToArgs struct {
	Money      int
	Recipients []string
}

// ParseRedPacketTo accepts "<amount> <name>[,<name>...]". Full-width commas
// separate names like ASCII ones.
func ParseRedPacketTo(args []string) (RedPacketToArgs, bool) {
	m := redPacketToPattern.FindStringSubmatch(strings.Join(args, " "))
	if m == nil {
		return RedPacketToArgs{}, false
	}
	money, err := strconv.Atoi(m[1])
	if err != nil {
		return RedPacketToArgs{}, false
	}
	recipients := strings.Split(strings.ReplaceAll(m[2], "，", ","), ",")
	return RedPacketToArgs{Money: money, Recipients: recipients}, true
}
