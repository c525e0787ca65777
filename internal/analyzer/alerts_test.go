package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loglens/loglens/internal/parser"
)

// tenRecordsThreeErrors spreads the errors over three sources so no
// single source crosses a 20% threshold on its own.
func tenRecordsThreeErrors() []*parser.Record {
	var records []*parser.Record
	for i := 0; i < 7; i++ {
		records = append(records, makeRecord("2024-01-01 10:00:00", "INFO", "api", "ok"))
	}
	records = append(records,
		makeRecord("2024-01-01 10:05:00", "ERROR", "db", "query failed"),
		makeRecord("2024-01-01 10:06:00", "ERROR", "cache", "eviction storm"),
		makeRecord("2024-01-01 10:07:00", "ERROR", "queue", "consumer lag"),
	)
	return records
}

func TestCheckAlertsGlobal(t *testing.T) {
	records := tenRecordsThreeErrors()

	t.Run("rate above threshold fires one global alert", func(t *testing.T) {
		alerts := CheckAlerts(records, 20.0)
		require.Len(t, alerts, 1)
		assert.Equal(t, "ALERT: Error rate of 30.00% exceeds threshold of 20.00%", alerts[0])
	})

	t.Run("rate below threshold fires nothing", func(t *testing.T) {
		assert.Nil(t, CheckAlerts(records, 40.0))
	})

	t.Run("threshold is exclusive", func(t *testing.T) {
		assert.Nil(t, CheckAlerts(records, 30.0))
	})
}

func TestCheckAlertsPerSource(t *testing.T) {
	records := []*parser.Record{
		makeRecord("2024-01-01 10:00:00", "ERROR", "db", "query failed"),
		makeRecord("2024-01-01 10:01:00", "INFO", "api", "ok"),
		makeRecord("2024-01-01 10:02:00", "CRITICAL", "db", "disk full"),
		makeRecord("2024-01-01 10:03:00", "ERROR", "cache", "eviction storm"),
	}

	// Global rate 75%; db is 2/4 = 50%, cache 1/4 = 25%. Source rates
	// divide by the total record count, not the source-local total.
	alerts := CheckAlerts(records, 30.0)
	require.Len(t, alerts, 2)
	assert.Equal(t, "ALERT: Error rate of 75.00% exceeds threshold of 30.00%", alerts[0])
	assert.Equal(t, "ALERT: Source 'db' has error rate of 50.00%", alerts[1])
}

func TestCheckAlertsSourceOrder(t *testing.T) {
	// Both sources cross the threshold; they must appear in order of
	// first error occurrence, not sorted by magnitude.
	records := []*parser.Record{
		makeRecord("2024-01-01 10:00:00", "ERROR", "cache", "first error"),
		makeRecord("2024-01-01 10:01:00", "ERROR", "db", "second error"),
		makeRecord("2024-01-01 10:02:00", "ERROR", "db", "third error"),
	}

	alerts := CheckAlerts(records, 10.0)
	require.Len(t, alerts, 3)
	assert.Contains(t, alerts[1], "'cache'")
	assert.Contains(t, alerts[2], "'db'")
}

func TestCheckAlertsEmpty(t *testing.T) {
	assert.Nil(t, CheckAlerts(nil, 0.0))
}
