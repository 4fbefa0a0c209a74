package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
	"github.com/stretchr/testify/require"
)

type staticDirectory struct {
	players rawdata.Document
	err     error
	loads   int
}

func (d *staticDirectory) Load(context.Context) (rawdata.Document, error) {
	d.loads++
	return d.players, d.err
}

func TestPlayerService_PlayersKeepsRequestOrder(t *testing.T) {
	t.Parallel()

	directory := &staticDirectory{players: rawdata.Document{
		"4046": map[string]any{"player_id": "4046", "full_name": "Patrick Mahomes", "position": "QB"},
		"6794": map[string]any{"player_id": "6794", "full_name": "Justin Jefferson", "position": "WR"},
	}}
	svc := NewPlayerService(directory, nil)

	table, err := svc.Players(context.Background(), []string{"6794", " 4046 ", ""})
	require.NoError(t, err)
	require.Equal(t, "players", table.Name)
	require.Equal(t, 2, table.Len())
	first, _ := table.Value(0, "full_name")
	second, _ := table.Value(1, "full_name")
	require.Equal(t, "Justin Jefferson", first)
	require.Equal(t, "Patrick Mahomes", second)
	require.Equal(t, 1, directory.loads)
}

func TestPlayerService_UnknownPlayer(t *testing.T) {
	t.Parallel()

	svc := NewPlayerService(&staticDirectory{players: rawdata.Document{}}, nil)

	_, err := svc.Players(context.Background(), []string{"0000"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPlayerService_RequiresIDs(t *testing.T) {
	t.Parallel()

	directory := &staticDirectory{}
	svc := NewPlayerService(directory, nil)

	_, err := svc.Players(context.Background(), []string{" ", ""})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.Zero(t, directory.loads)
}

func TestPlayerService_DirectoryFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	svc := NewPlayerService(&staticDirectory{err: boom}, nil)

	_, err := svc.Players(context.Background(), []string{"4046"})
	require.ErrorIs(t, err, boom)
}
