package matchfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
)

const (
	// UnknownName substitutes any absent team or player name; the source
	// data never fails a record over missing metadata.
	UnknownName = "Unknown"

	defaultCompetition = "Unknown"
	defaultSeason      = "Unknown"
	dateLayout         = "2006-01-02"
)

// DefaultMatchDate substitutes an absent or unparseable match date.
var DefaultMatchDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Issue is one coercion failure inside an otherwise loadable record.
type Issue struct {
	Player string
	Field  string
	Raw    string
}

func (i Issue) String() string {
	return fmt.Sprintf("player=%q field=%s raw=%q", i.Player, i.Field, i.Raw)
}

// Parse decodes one match record. Structural JSON errors fail the record;
// bad numeric values and missing metadata do not — they come back as
// issues and defaults respectively.
func Parse(data []byte) (Record, []Issue, error) {
	var record Record
	if err := sonic.Unmarshal(data, &record); err != nil {
		return Record{}, nil, crerr.Wrap(err, "decode match record")
	}

	record.HomeTeam = defaultName(record.HomeTeam)
	record.AwayTeam = defaultName(record.AwayTeam)
	if strings.TrimSpace(record.Competition) == "" {
		record.Competition = defaultCompetition
	}
	if strings.TrimSpace(record.Season) == "" {
		record.Season = defaultSeason
	}

	issues := make([]Issue, 0)
	for idx := range record.HomePlayers {
		record.HomePlayers[idx].Name = defaultName(record.HomePlayers[idx].Name)
		issues = append(issues, statIssues(record.HomePlayers[idx])...)
	}
	for idx := range record.AwayPlayers {
		record.AwayPlayers[idx].Name = defaultName(record.AwayPlayers[idx].Name)
		issues = append(issues, statIssues(record.AwayPlayers[idx])...)
	}

	return record, issues, nil
}

// ParseFile reads and parses one source file.
func ParseFile(path string) (Record, []Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Record{}, nil, crerr.Wrapf(err, "read match file %s", path)
	}
	return Parse(data)
}

// ListFiles returns the .json files under dir sorted by name, so a load
// order is stable across platforms.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, crerr.Wrapf(err, "read match directory %s", dir)
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		out = append(out, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(out)

	return out, nil
}

// Date returns the record's match date, falling back to DefaultMatchDate
// when absent or unparseable.
func (r Record) Date() time.Time {
	raw := strings.TrimSpace(r.MatchDate)
	if raw == "" {
		return DefaultMatchDate
	}
	if parsed, err := time.Parse(dateLayout, raw); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed
	}
	return DefaultMatchDate
}

func defaultName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return UnknownName
	}
	return name
}

func statIssues(stat PlayerStat) []Issue {
	fields := []struct {
		name    string
		invalid bool
		raw     string
	}{
		{"minutes", stat.Minutes.Invalid, stat.Minutes.Raw},
		{"goals", stat.Goals.Invalid, stat.Goals.Raw},
		{"assists", stat.Assists.Invalid, stat.Assists.Raw},
		{"shots", stat.Shots.Invalid, stat.Shots.Raw},
		{"shots_on_target", stat.ShotsOnTarget.Invalid, stat.ShotsOnTarget.Raw},
		{"passes", stat.Passes.Invalid, stat.Passes.Raw},
		{"passes_completed", stat.PassesComplete.Invalid, stat.PassesComplete.Raw},
		{"tackles", stat.Tackles.Invalid, stat.Tackles.Raw},
		{"tackles_won", stat.TacklesWon.Invalid, stat.TacklesWon.Raw},
		{"interceptions", stat.Interceptions.Invalid, stat.Interceptions.Raw},
		{"fouls_committed", stat.FoulsCommitted.Invalid, stat.FoulsCommitted.Raw},
		{"fouls_drawn", stat.FoulsDrawn.Invalid, stat.FoulsDrawn.Raw},
		{"yellow_cards", stat.YellowCards.Invalid, stat.YellowCards.Raw},
		{"red_cards", stat.RedCards.Invalid, stat.RedCards.Raw},
		{"rating", stat.Rating.Invalid, stat.Rating.Raw},
	}

	out := make([]Issue, 0)
	for _, field := range fields {
		if !field.invalid {
			continue
		}
		out = append(out, Issue{Player: stat.Name, Field: field.name, Raw: field.raw})
	}

	return out
}
