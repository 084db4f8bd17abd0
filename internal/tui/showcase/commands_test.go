package showcase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/alexisbeaulieu97/showcase/internal/showcase"
)

func TestLoadingTimerCmd(t *testing.T) {
	cmd := loadingTimerCmd(core.LoadingTimer{Seq: 7, Delay: time.Millisecond})
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, LoadingElapsedMsg{Seq: 7}, msg)
}

func TestApplyThemeCmd(t *testing.T) {
	attr := core.ThemeAttribute{Name: core.ThemeAttributeName, Value: "dark"}

	msg := applyThemeCmd(attr)()
	assert.Equal(t, ThemeAppliedMsg{Attribute: attr}, msg)
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, "dark", themeFor(core.ThemeAttribute{Value: "dark"}).Mode.String())
	assert.Equal(t, "light", themeFor(core.ThemeAttribute{Value: "light"}).Mode.String())
	assert.Equal(t, "light", themeFor(core.ThemeAttribute{}).Mode.String())
}
