package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// UseCase describes loading and changing preferences.
type UseCase interface {
	Load(ctx context.Context, owner string) (Preferences, error)
	Save(ctx context.Context, owner string, p Preferences) (Preferences, error)
	Apply(ctx context.Context, owner string, action Action) (Preferences, error)
	SetSidebarWidth(ctx context.Context, owner string, width int) (Preferences, error)
	SetHiddenFields(ctx context.Context, owner string, hidden []string) (Preferences, error)
}

type service struct {
	store         Store
	log           *slog.Logger
	defaultHidden []string
}

// Option configures the service.
type Option func(*service)

// WithDefaultHidden sets the fields hidden for owners without stored
// preferences.
func WithDefaultHidden(keys []string) Option {
	return func(s *service) { s.defaultHidden = slices.Clone(keys) }
}

func NewService(store Store, log *slog.Logger, opts ...Option) UseCase {
	if log == nil {
		log = slog.Default()
	}
	s := &service{store: store, log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) defaults() Preferences {
	p := Defaults()
	p.HiddenFields = append(p.HiddenFields, s.defaultHidden...)
	return p
}

// Load returns the stored preferences. A missing or unreadable blob gives the
// defaults; only store failures are errors.
func (s *service) Load(ctx context.Context, owner string) (Preferences, error) {
	blob, err := s.store.Get(ctx, owner)
	if errors.Is(err, ErrNotFound) {
		return s.defaults(), nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("load preferences: %w", err)
	}
	p := s.defaults()
	if err := json.Unmarshal(blob, &p); err != nil {
		s.log.Warn("discarding corrupt preferences", "owner", owner, "err", err)
		return s.defaults(), nil
	}
	return Sanitize(p), nil
}

func (s *service) Save(ctx context.Context, owner string, p Preferences) (Preferences, error) {
	p = Sanitize(p)
	blob, err := json.Marshal(p)
	if err != nil {
		return Preferences{}, fmt.Errorf("encode preferences: %w", err)
	}
	if err := s.store.Put(ctx, owner, blob); err != nil {
		return Preferences{}, fmt.Errorf("save preferences: %w", err)
	}
	return p, nil
}

func (s *service) Apply(ctx context.Context, owner string, action Action) (Preferences, error) {
	p, err := s.Load(ctx, owner)
	if err != nil {
		return Preferences{}, err
	}
	p, err = ApplyAction(p, action)
	if err != nil {
		return Preferences{}, err
	}
	return s.Save(ctx, owner, p)
}

func (s *service) SetSidebarWidth(ctx context.Context, owner string, width int) (Preferences, error) {
	p, err := s.Load(ctx, owner)
	if err != nil {
		return Preferences{}, err
	}
	p.SidebarWidth = width
	return s.Save(ctx, owner, p)
}

func (s *service) SetHiddenFields(ctx context.Context, owner string, hidden []string) (Preferences, error) {
	p, err := s.Load(ctx, owner)
	if err != nil {
		return Preferences{}, err
	}
	p.HiddenFields = hidden
	return s.Save(ctx, owner, p)
}

// ApplyAction returns p changed by one accessibility menu command. Reset
// restores the display defaults and keeps the field selection.
func ApplyAction(p Preferences, action Action) (Preferences, error) {
	switch action {
	case ActionTheme:
		if p.Theme == ThemeDark {
			p.Theme = ThemeLight
		} else {
			p.Theme = ThemeDark
		}
	case ActionContrast:
		p.Contrast = !p.Contrast
	case ActionFontUp:
		p.FontSize = min(p.FontSize+FontSizeStep, MaxFontSize)
	case ActionFontDown:
		p.FontSize = max(p.FontSize-FontSizeStep, MinFontSize)
	case ActionReset:
		hidden := p.HiddenFields
		width := p.SidebarWidth
		p = Defaults()
		p.HiddenFields = hidden
		p.SidebarWidth = width
	default:
		return p, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}
	return Sanitize(p), nil
}

// Sanitize clamps every setting into its valid range.
func Sanitize(p Preferences) Preferences {
	if p.Theme != ThemeDark {
		p.Theme = ThemeLight
	}
	if p.FontSize == 0 {
		p.FontSize = DefaultFontSize
	}
	p.FontSize = min(max(p.FontSize, MinFontSize), MaxFontSize)
	if p.SidebarWidth == 0 {
		p.SidebarWidth = DefaultSidebarWidth
	}
	p.SidebarWidth = min(max(p.SidebarWidth, MinSidebarWidth), MaxSidebarWidth)
	hidden := make([]string, 0, len(p.HiddenFields))
	for _, f := range p.HiddenFields {
		if f != "" && !slices.Contains(hidden, f) {
			hidden = append(hidden, f)
		}
	}
	p.HiddenFields = hidden
	return p
}
