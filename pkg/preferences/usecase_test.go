package preferences

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
	err  error
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, owner string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	b, ok := m.data[owner]
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

func (m *memStore) Put(_ context.Context, owner string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.data[owner] = blob
	return nil
}

func TestLoadDefaults(t *testing.T) {
	svc := NewService(newMemStore(), nil)
	p, err := svc.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), p)
}

func TestLoadCorruptBlob(t *testing.T) {
	st := newMemStore()
	st.data["u1"] = []byte("{not json")
	svc := NewService(st, nil)
	p, err := svc.Load(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), p)
}

func TestLoadStoreFailure(t *testing.T) {
	st := newMemStore()
	st.err = errors.New("disk on fire")
	svc := NewService(st, nil)
	_, err := svc.Load(context.Background(), "u1")
	assert.Error(t, err)
}

func TestApplyActions(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), nil)

	p, err := svc.Apply(ctx, "u1", ActionTheme)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, p.Theme)

	p, err = svc.Apply(ctx, "u1", ActionContrast)
	require.NoError(t, err)
	assert.True(t, p.Contrast)

	for k := 0; k < 10; k++ {
		p, err = svc.Apply(ctx, "u1", ActionFontUp)
		require.NoError(t, err)
	}
	assert.Equal(t, MaxFontSize, p.FontSize)

	for k := 0; k < 10; k++ {
		p, err = svc.Apply(ctx, "u1", ActionFontDown)
		require.NoError(t, err)
	}
	assert.Equal(t, MinFontSize, p.FontSize)

	_, err = svc.SetHiddenFields(ctx, "u1", []string{"titulo", "titulo", ""})
	require.NoError(t, err)

	p, err = svc.Apply(ctx, "u1", ActionReset)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, p.Theme)
	assert.False(t, p.Contrast)
	assert.Equal(t, DefaultFontSize, p.FontSize)
	assert.Equal(t, []string{"titulo"}, p.HiddenFields)

	loaded, err := svc.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, p, loaded)

	_, err = svc.Apply(ctx, "u1", Action("explode"))
	assert.True(t, errors.Is(err, ErrInvalidAction))
}

func TestSidebarWidthClamped(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), nil)
	p, err := svc.SetSidebarWidth(ctx, "u1", 5000)
	require.NoError(t, err)
	assert.Equal(t, MaxSidebarWidth, p.SidebarWidth)
	p, err = svc.SetSidebarWidth(ctx, "u1", -4)
	require.NoError(t, err)
	assert.Equal(t, MinSidebarWidth, p.SidebarWidth)
}

func TestSanitize(t *testing.T) {
	p := Sanitize(Preferences{Theme: "neon", FontSize: 999})
	assert.Equal(t, ThemeLight, p.Theme)
	assert.Equal(t, MaxFontSize, p.FontSize)
	assert.Equal(t, DefaultSidebarWidth, p.SidebarWidth)
	assert.NotNil(t, p.HiddenFields)
}

func TestOwnersAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), nil)
	_, err := svc.Apply(ctx, "a", ActionTheme)
	require.NoError(t, err)
	p, err := svc.Load(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, p.Theme)
}

func TestDefaultHiddenFields(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newMemStore(), nil, WithDefaultHidden([]string{"cpf-responsavel"}))

	p, err := svc.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"cpf-responsavel"}, p.HiddenFields)

	p, err = svc.SetHiddenFields(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Empty(t, p.HiddenFields)

	p, err = svc.Load(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, p.HiddenFields)
}
