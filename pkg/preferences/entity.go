package preferences

import (
	"context"
	"errors"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	DefaultFontSize = 100
	MinFontSize     = 70
	MaxFontSize     = 150
	FontSizeStep    = 10

	DefaultSidebarWidth = 250
	MinSidebarWidth     = 10
	MaxSidebarWidth     = 1000
)

var (
	ErrNotFound      = errors.New("preferences not found")
	ErrInvalidAction = errors.New("invalid preferences action")
)

// Preferences are the per-user display settings of the search page.
type Preferences struct {
	Theme        string   `json:"theme"`
	Contrast     bool     `json:"contrast"`
	FontSize     int      `json:"fontSize"`
	SidebarWidth int      `json:"sidebarWidth"`
	HiddenFields []string `json:"hiddenFields"`
}

// Defaults returns the settings of a first visit.
func Defaults() Preferences {
	return Preferences{
		Theme:        ThemeLight,
		FontSize:     DefaultFontSize,
		SidebarWidth: DefaultSidebarWidth,
		HiddenFields: []string{},
	}
}

// Action is an accessibility menu command.
type Action string

const (
	ActionTheme    Action = "theme"
	ActionContrast Action = "contrast"
	ActionFontUp   Action = "fontUp"
	ActionFontDown Action = "fontDown"
	ActionReset    Action = "reset"
)

// Store keeps one opaque blob per owner.
type Store interface {
	Get(ctx context.Context, owner string) ([]byte, error)
	Put(ctx context.Context, owner string, blob []byte) error
}
