package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// TrialRecord is the durable outcome of one trial. Records are appended in
// presentation order and never mutated afterwards. ResponseKey is KeyNone
// when the trial timed out without a response; RTSeconds is meaningful only
// when a response was recorded.
type TrialRecord struct {
	Participant   string
	Session       string
	TrialIndex    int
	Load          Load
	Background    BackgroundType
	TargetPresent bool
	Letters       string
	ResponseKey   Key
	RTSeconds     float64
	Correct       bool
}

// ResultLog accumulates the per-trial records of one session.
type ResultLog struct {
	Records []TrialRecord
}

func (l *ResultLog) Append(rec TrialRecord) {
	l.Records = append(l.Records, rec)
}

var resultHeader = []string{
	"participant", "session", "trial_index",
	"load", "background_type", "target_present",
	"letters", "response_key", "rt", "correct",
}

// Save writes the session CSV: the fixed header row, then one row per
// record. The directory is created if missing. Any write failure is
// returned to the caller and treated as fatal.
func (l *ResultLog) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write(resultHeader)
	for _, rec := range l.Records {
		w.Write(rec.row())
	}
	w.Flush()
	return w.Error()
}

func (r TrialRecord) row() []string {
	key, rt := "", ""
	if r.ResponseKey != KeyNone {
		key = r.ResponseKey.String()
		rt = strconv.FormatFloat(r.RTSeconds, 'f', 3, 64)
	}
	return []string{
		r.Participant,
		r.Session,
		strconv.Itoa(r.TrialIndex),
		string(r.Load),
		string(r.Background),
		boolField(r.TargetPresent),
		r.Letters,
		key,
		rt,
		boolField(r.Correct),
	}
}

func boolField(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// ResultPath builds the per-session output file name from the participant id
// and the session start time.
func ResultPath(dataDir, participant string, start time.Time) string {
	name := fmt.Sprintf("loadtask_%s_%s.csv", participant, start.Format("20060102-150405"))
	return filepath.Join(dataDir, name)
}
