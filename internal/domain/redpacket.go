package domain

import (
	"errors"
	"fmt"
)

type RedPacketType string

const (
	RedPacketRandom            RedPacketType = "random"
	RedPacketAverage           RedPacketType = "average"
	RedPacketHeartbeat         RedPacketType = "heartbeat"
	RedPacketRockPaperScissors RedPacketType = "rockPaperScissors"
	RedPacketSpecify           RedPacketType = "specify"
)

type Gesture int

const (
	GestureRock Gesture = iota
	GestureScissors
	GesturePaper
)

func (g Gesture) String() string {
	switch g {
	case GestureRock:
		return "rock"
	case GestureScissors:
		return "scissors"
	case GesturePaper:
		return "paper"
	default:
		return fmt.Sprintf("gesture(%d)", int(g))
	}
}

// RedPacket is a gift of points sent to the room. Count equals
// len(Recipients) for targeted packets.
type RedPacket struct {
	Type       RedPacketType
	Message    string
	Money      int
	Count      int
	Recipients []string
	Gesture    *Gesture
}

func NewRedPacket(kind RedPacketType, message string, money, count int) RedPacket {
	return RedPacket{Type: kind, Message: message, Money: money, Count: count}
}

func NewRPSRedPacket(message string, money, count int, gesture Gesture) RedPacket {
	return RedPacket{
		Type:    RedPacketRockPaperScissors,
		Message: message,
		Money:   money,
		Count:   count,
		Gesture: &gesture,
	}
}

func NewSpecifyRedPacket(message string, money int, recipients []string) RedPacket {
	return RedPacket{
		Type:       RedPacketSpecify,
		Message:    message,
		Money:      money,
		Count:      len(recipients),
		Recipients: recipients,
	}
}

func (p RedPacket) Validate() error {
	switch p.Type {
	case RedPacketRandom, RedPacketAverage, RedPacketHeartbeat, RedPacketRockPaperScissors, RedPacketSpecify:
	default:
		return fmt.Errorf("unsupported red packet type %q", p.Type)
	}
	if p.Money <= 0 {
		return errors.New("money must be positive")
	}
	if p.Count <= 0 {
		return errors.New("count must be positive")
	}
	if p.Type == RedPacketSpecify && len(p.Recipients) == 0 {
		return errors.New("recipients are required")
	}
	if p.Type == RedPacketRockPaperScissors && p.Gesture == nil {
		return errors.New("gesture is required")
	}

	return nil
}
