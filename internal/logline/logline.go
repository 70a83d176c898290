// Package logline holds the small shared value types that every other bark
// package builds on: the log record itself, its monotonic sequence number,
// and the opaque handle used to name a source.
package logline

import "time"

// Seq is a monotonically increasing identifier assigned by the line store
// at append time. It is never reused and never skipped.
type Seq uint64

// Level is the classified severity of a log line's leading token.
type Level int

const (
	LevelUnknown Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SourceID is an opaque handle assigned sequentially at source registration.
// It is never renumbered, even after the source it names is removed.
type SourceID uint32

// SourceKind names the kind of adapter that feeds a source.
type SourceKind int

const (
	KindFile SourceKind = iota
	KindContainer
	KindPod
	KindRemote
)

func (k SourceKind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindContainer:
		return "container"
	case KindPod:
		return "pod"
	case KindRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// SourceDescriptor is the user-visible metadata for one registered source.
type SourceDescriptor struct {
	ID        SourceID
	Kind      SourceKind
	Label     string
	ColorSlot uint8
}

// LogLine is a single ingested record. Raw holds the unmodified bytes
// (which may contain ANSI escapes); decoration is computed lazily by the
// decorate package, never stored here.
type LogLine struct {
	Seq         Seq
	SourceID    SourceID
	ReceivedAt  time.Time
	Raw         []byte
	ParsedLevel Level
	HasLevel    bool
	ParsedTime  time.Time
	HasTime     bool
}
