package console

import (
	"context"

	"github.com/bnema/fishpi-cli/internal/domain"
)

const guide = `命令列表:
  #, #h, #help                  显示本帮助
  #cli                          进入交互模式 (断开聊天室)
  #chatroom                     进入聊天室
  #siguo                        思过崖
  #bm <内容>                    发送清风明月
  #api-key                      显示当前 api key
  #transfer <用户> <积分> <备注> 转账
  #answer                       切换答题模式
  #checked                      查看今日签到状态
  #reward                       领取奖励
  #revoke                       撤回最后一条消息
  #liveness                     查看活跃度
  #point                        查看积分
  #me                           查看当前用户
  #account                      查看分身账户
  #change <用户>                切换账户
  #user <用户>                  查看用户信息
  #online-users                 查看在线用户
  #blacklist                    查看小黑屋
  #ban keyword|user <内容>      加入小黑屋
  #release keyword|user <内容>  移出小黑屋
  #rp <积分> <个数>             拼手气红包
  #rp-ave <积分> <个数>         平分红包
  #rp-hb <积分> <个数>          心跳红包
  #rp-rps <积分> <个数>         猜拳红包
  #rp-rps-limit <积分>          猜拳红包超过该值不抢
  #rp-time <秒>                 抢红包等待时间
  #rp-to <积分> <用户1,用户2>   专属红包
其他输入将作为聊天消息发送`

type HelpCommand struct{}

func (HelpCommand) Exec(_ context.Context, env *Env, _ []string) error {
	env.println(guide)
	return nil
}

func NewBuiltinRegistry() *Registry {
	registry := NewRegistry(ChatCommand{})
	RegisterBuiltins(registry)
	return registry
}

func RegisterBuiltins(r *Registry) {
	help := HelpCommand{}
	r.Register("#", help)
	r.Register("#h", help)
	r.Register("#help", help)
	r.Register("#cli", CLICommand{})
	r.Register("#chatroom", ChatRoomCommand{})
	r.Register("#siguo", SiguoCommand{})
	r.Register("#bm", BreezemoonCommand{})
	r.Register("#api-key", APIKeyCommand{})
	r.Register("#transfer", TransferCommand{})
	r.Register("#answer", AnswerModeCommand{})
	r.Register("#checked", CheckedInCommand{})
	r.Register("#reward", RewardCommand{})
	r.Register("#revoke", RevokeCommand{})
	r.Register("#liveness", LivenessCommand{})
	r.Register("#point", PointCommand{})
	r.Register("#me", MeCommand{})
	r.Register("#account", AccountsCommand{})
	r.Register("#change", ChangeCommand{})
	r.Register("#user", UserCommand{})
	r.Register("#online-users", OnlineUsersCommand{})
	r.Register("#blacklist", BlacklistCommand{})
	r.Register("#ban", BanCommand{})
	r.Register("#release", ReleaseCommand{})
	r.Register("#rp", RedPacketCommand{Type: domain.RedPacketRandom, Greeting: greetingRandom})
	r.Register("#rp-ave", RedPacketCommand{Type: domain.RedPacketAverage, Greeting: greetingAverage})
	r.Register("#rp-hb", RedPacketCommand{Type: domain.RedPacketHeartbeat, Greeting: greetingHeartbeat})
	r.Register("#rp-rps", RedPacketCommand{Type: domain.RedPacketRockPaperScissors, Greeting: greetingRPS})
	r.Register("#rp-rps-limit", RPSLimitCommand{})
	r.Register("#rp-time", RedPacketTimeCommand{})
	r.Register("#rp-to", RedPacketToCommand{})
}
