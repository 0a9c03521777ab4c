package cmd

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnboardingSettingsRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// Missing file reads as zero settings, not an error.
	got, err := loadOnboardingSettings(dir)
	require.NoError(t, err)
	assert.False(t, got.Completed)

	want := OnboardingSettings{Completed: true, SearchEnabled: true}
	require.NoError(t, saveOnboardingSettings(dir, want))

	got, err = loadOnboardingSettings(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSecureAPIKeyRoundTrip(t *testing.T) {
	dir := t.TempDir()

	// Missing key file reads as empty.
	key, err := loadSecureAPIKey(dir)
	require.NoError(t, err)
	assert.Empty(t, key)

	require.NoError(t, saveSecureAPIKey(dir, "  sk-test-123  \n"))
	key, err = loadSecureAPIKey(dir)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", key)
}

func TestShouldRunOnboardingSkipsCompleted(t *testing.T) {
	assert.False(t, shouldRunOnboarding(OnboardingSettings{Completed: true}))
}

func TestSetupDeclineDisablesSearch(t *testing.T) {
	m := newSetupModel("")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	got := updated.(setupModel)

	assert.NotNil(t, cmd)
	assert.Equal(t, setupFinished, got.step)
	assert.True(t, got.settings.Completed)
	assert.False(t, got.settings.SearchEnabled)
}

func TestSetupUsesExistingKey(t *testing.T) {
	m := newSetupModel("sk-from-env")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	got := updated.(setupModel)

	assert.NotNil(t, cmd)
	assert.Equal(t, setupFinished, got.step)
	assert.True(t, got.settings.SearchEnabled)
	assert.Equal(t, "sk-from-env", got.capturedKey)
}

func TestSetupEnableAsksForKey(t *testing.T) {
	m := newSetupModel("")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	got := updated.(setupModel)
	assert.Equal(t, setupAskKey, got.step)

	updated, cmd := got.Update(tea.KeyMsg{Type: tea.KeyEsc})
	got = updated.(setupModel)
	assert.NotNil(t, cmd)
	assert.Equal(t, setupFinished, got.step)
	assert.False(t, got.settings.SearchEnabled)
}
