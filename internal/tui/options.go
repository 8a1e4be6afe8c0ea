package tui

type Option func(*Model)

func WithConfirmQuit(enabled bool) Option {
	return func(m *Model) {
		m.confirmQuit = enabled
	}
}
