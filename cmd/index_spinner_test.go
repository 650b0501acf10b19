package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/bundesliga-context-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexLoaderQuietSkipsSpinner(t *testing.T) {
	var output bytes.Buffer
	want := domain.CityClubIndex{"Munich": {Name: "FC Bayern Munich", ID: "Q15789"}}

	loader := indexLoader{
		build:  func(context.Context) (domain.CityClubIndex, error) { return want, nil },
		output: &output,
		quiet:  true,
	}

	index, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, index)
	assert.Empty(t, output.String())
}

func TestIndexLoaderReturnsBuildResultThroughSpinner(t *testing.T) {
	var output bytes.Buffer
	want := domain.CityClubIndex{"Hamburg": {Name: "Hamburger SV", ID: "Q41420"}}

	loader := indexLoader{
		build: func(context.Context) (domain.CityClubIndex, error) {
			time.Sleep(200 * time.Millisecond)
			return want, nil
		},
		output: &output,
	}

	index, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, index)
	assert.Contains(t, output.String(), indexSpinnerLabel)
}

func TestIndexLoaderReturnsBuildError(t *testing.T) {
	buildErr := domain.NewLookupError("query bundesliga clubs", errors.New("status 503"))

	loader := indexLoader{
		build:  func(context.Context) (domain.CityClubIndex, error) { return nil, buildErr },
		output: &bytes.Buffer{},
	}

	index, err := loader.Load(context.Background())
	require.ErrorIs(t, err, domain.ErrLookup)
	assert.Nil(t, index)
}

func TestIndexLoaderModelShowsElapsedUntilLoaded(t *testing.T) {
	started := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	clock := started
	m := newIndexLoaderModel(nil, func() time.Time { return clock })

	clock = started.Add(2500 * time.Millisecond)
	assert.Contains(t, m.View(), indexSpinnerLabel+" 2s")

	updated, _ := m.Update(spinner.TickMsg{})
	m = updated.(indexLoaderModel)
	assert.False(t, m.done)

	updated, cmd := m.Update(indexLoadedMsg{index: domain.CityClubIndex{}})
	m = updated.(indexLoaderModel)
	assert.True(t, m.done)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}
