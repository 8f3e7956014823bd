package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/lotsizing/pkg/application/services"
)

func runSession(t *testing.T, service *services.LotSizingService, input string) string {
	t.Helper()
	var out bytes.Buffer
	err := NewInteractiveCommand(service, strings.NewReader(input), &out).Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestInteractiveCommand_ComputesAndQuits(t *testing.T) {
	out := runSession(t, services.NewLotSizingService(), "10,10\n1\n50\nquit\n")

	assert.Contains(t, out, "Minimum total cost: 90.00")
	assert.NotContains(t, out, InvalidInputMessage)
}

func TestInteractiveCommand_RecoversFromInvalidInput(t *testing.T) {
	input := strings.Join([]string{
		"10,abc", "1", "50", // bad demand
		"10,10", "one", "50", // bad holding cost
		"-5", "1", "50", // negative demand
		"10,10", "1", "50", // valid
	}, "\n") + "\n"

	out := runSession(t, services.NewLotSizingService(), input)

	assert.Equal(t, 3, strings.Count(out, InvalidInputMessage))
	assert.Contains(t, out, "Minimum total cost: 90.00")
	assert.Greater(t, strings.Index(out, "Minimum total cost"), strings.LastIndex(out, InvalidInputMessage),
		"session must keep running after errors")
}

func TestInteractiveCommand_ReportsOtherErrors(t *testing.T) {
	service := services.NewLotSizingServiceWithConfig(services.ServiceConfig{MaxPeriods: 1})
	out := runSession(t, service, "1,2\n1\n1\n5\n1\n1\n")

	assert.Contains(t, out, "Error: horizon too long")
	assert.Contains(t, out, "Minimum total cost: 6.00")
}

func TestInteractiveCommand_EndsOnEOFMidEntry(t *testing.T) {
	out := runSession(t, services.NewLotSizingService(), "10,10\n1\n")
	assert.NotContains(t, out, "Minimum total cost")
}

func TestInteractiveCommand_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := NewInteractiveCommand(services.NewLotSizingService(), strings.NewReader("1\n1\n1\n"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInteractiveCommand_AcceptsLongDemandLine(t *testing.T) {
	values := make([]string, 5000)
	for i := range values {
		values[i] = "1.000000000000000000000"
	}
	line := strings.Join(values, ",")
	require.Greater(t, len(line), 64*1024)

	out := runSession(t, services.NewLotSizingService(), line+"\n0\n1\nquit\n")

	assert.Contains(t, out, "Minimum total cost: 1.00")
	assert.NotContains(t, out, InvalidInputMessage)
}
