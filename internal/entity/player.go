package entity

const (
	HumanPlayerType = "human"
	BotPlayerType   = "bot"
)

type Player struct {
	ID   string
	Mark string
	Type string
}

func (that *Player) IsBot() bool {
	return that.Type == BotPlayerType
}
