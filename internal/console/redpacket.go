package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/fishpi-cli/internal/domain"
)

const (
	greetingRandom    = "那就看运气吧!"
	greetingAverage   = "不要抢,人人有份!"
	greetingHeartbeat = "玩的就是心跳!"
	greetingRPS       = "剪刀石头布!"
	greetingSpecify   = "听我说谢谢你,因为有你,温暖了四季!"

	invalidRedPacket = "非法红包指令"
)

// RedPacketCommand sends "<amount> <count>" packets of one variant.
type RedPacketCommand struct {
	Type     domain.RedPacketType
	Greeting string
}

func (c RedPacketCommand) Exec(ctx context.Context, env *Env, args []string) error {
	parsed, ok := ParseRedPacket(args)
	if !ok {
		env.println(invalidRedPacket)
		return nil
	}

	var packet domain.RedPacket
	if c.Type == domain.RedPacketRockPaperScissors {
		packet = domain.NewRPSRedPacket(c.Greeting, parsed.Money, parsed.Count, env.gesture())
	} else {
		packet = domain.NewRedPacket(c.Type, c.Greeting, parsed.Money, parsed.Count)
	}
	return sendRedPacket(ctx, env, packet)
}

type RedPacketToCommand struct{}

func (RedPacketToCommand) Exec(ctx context.Context, env *Env, args []string) error {
	parsed, ok := ParseRedPacketTo(args)
	if !ok {
		env.println(invalidRedPacket)
		return nil
	}
	return sendRedPacket(ctx, env, domain.NewSpecifyRedPacket(greetingSpecify, parsed.Money, parsed.Recipients))
}

func sendRedPacket(ctx context.Context, env *Env, packet domain.RedPacket) error {
	session, err := env.current()
	if err != nil {
		return err
	}
	if err := env.Forum.SendRedPacket(ctx, session.APIKey, packet); err != nil {
		return fmt.Errorf("send red packet: %w", err)
	}
	return nil
}

// RPSLimitCommand sets the amount above which rock-paper-scissors packets are
// not grabbed.
type RPSLimitCommand struct{}

func (RPSLimitCommand) Exec(ctx context.Context, env *Env, args []string) error {
	if len(args) == 0 {
		env.println(invalidRedPacket)
		return nil
	}
	limit, err := strconv.Atoi(args[0])
	if err != nil {
		env.println(invalidRedPacket)
		return nil
	}

	env.State.SetRPSLimit(ctx, limit)
	env.printf("猜拳红包超过%d不抢\n", limit)
	return nil
}

type RedPacketTimeCommand struct{}

func (RedPacketTimeCommand) Exec(ctx context.Context, env *Env, args []string) error {
	seconds, ok := ParseSeconds(args)
	if !ok {
		env.println(invalidRedPacket)
		return nil
	}

	env.State.SetRedPacketRate(ctx, seconds)
	env.printf("红包等待时间已设置成功 %ds\n", seconds)
	return nil
}

// TransferCommand takes "<to> <amount> <memo>" and calls the forum with the
// amount first.
type TransferCommand struct{}

func (TransferCommand) Exec(ctx context.Context, env *Env, args []string) error {
	parsed, ok := ParseTransfer(args)
	if !ok {
		env.println("非法转账命令")
		return nil
	}

	session, err := env.current()
	if err != nil {
		return err
	}
	if err := env.Forum.Transfer(ctx, session.APIKey, parsed.Amount, parsed.To, parsed.Memo); err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	return nil
}
