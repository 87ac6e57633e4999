package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeFormatter(t *testing.T) {
	r := require.New(t)
	ts := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	f := NewTimeFormatter(time.UTC, "")
	r.Equal("1/2/2024, 10:00:00 AM", f.Format(ts, ""))
	r.Equal("1/2/2024, 10:00:00 AM", f.Format(ts, "en-US,en;q=0.9"))
	r.Equal("02/01/2024, 10:00:00", f.Format(ts, "en-GB"))
	r.Equal("2.1.2024, 10:00:00", f.Format(ts, "de-DE,de;q=0.9,en;q=0.5"))
	r.Equal("2024/1/2 10:00:00", f.Format(ts, "ja"))
	r.Equal("1/2/2024, 10:00:00 AM", f.Format(ts, "not a header;;;"))
}

func TestTimeFormatterDefaults(t *testing.T) {
	r := require.New(t)
	ts := time.Date(2024, 1, 2, 22, 30, 5, 0, time.UTC)

	paris, err := time.LoadLocation("Europe/Paris")
	r.NoError(err)

	f := NewTimeFormatter(paris, "fr-FR")
	r.Equal("02/01/2024 23:30:05", f.Format(ts, ""))

	f = NewTimeFormatter(nil, "")
	r.Equal("1/2/2024, 10:30:05 PM", f.Format(ts, ""))
}

func TestLocaleContext(t *testing.T) {
	r := require.New(t)

	r.Equal("", localeFrom(context.Background()))
	r.Equal("de", localeFrom(WithLocale(context.Background(), "de")))
}
