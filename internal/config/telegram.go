package config

type TelegramConfig struct {
	ApiToken    string  `yaml:"token"`
	NotifyChats []int64 `yaml:"notify-chats"`
}

func (t *TelegramConfig) Token() string {
	return t.ApiToken
}

func (t *TelegramConfig) ChatIDs() []int64 {
	return t.NotifyChats
}
