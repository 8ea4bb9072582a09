package output

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	"github.com/lgbarn/fen-extract-go/internal/processing"
)

// JSONResult represents one processed line in JSON format.
type JSONResult struct {
	Index     int           `json:"index"`
	Source    string        `json:"source"`
	Line      int           `json:"line"`
	Input     string        `json:"input"`
	Valid     bool          `json:"valid"`
	Error     string        `json:"error,omitempty"`
	Kind      string        `json:"kind,omitempty"`
	Matched   bool          `json:"matched"`
	Duplicate bool          `json:"duplicate,omitempty"`
	Position  *JSONPosition `json:"position,omitempty"`
}

// JSONPosition is the decoded summary of a valid line.
type JSONPosition struct {
	ToMove               string `json:"toMove"`
	WhiteCastling        string `json:"whiteCastling"`
	BlackCastling        string `json:"blackCastling"`
	EnPassant            string `json:"enPassant"`
	HalfMoves            uint   `json:"halfMoves"`
	FullMoves            uint   `json:"fullMoves"`
	PieceCount           int    `json:"pieceCount"`
	Material             string `json:"material"`
	InsufficientMaterial bool   `json:"insufficientMaterial,omitempty"`
}

// JSONReport holds all processed lines for array output.
type JSONReport struct {
	Count   int           `json:"count"`
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a processed line to its JSON form.
func ResultToJSON(res Result) *JSONResult {
	jr := &JSONResult{
		Index:     res.Index,
		Source:    res.Source,
		Line:      res.Line,
		Input:     res.Input,
		Valid:     res.Err == nil,
		Matched:   res.Matched,
		Duplicate: res.Duplicate,
	}

	if res.Err != nil {
		jr.Error = res.Err.Error()
		jr.Kind = ErrorKind(res.Err)
		return jr
	}

	jr.Position = positionToJSON(res.Pos)
	return jr
}

func positionToJSON(pos chess.Position) *JSONPosition {
	s := processing.Summarize(pos)
	return &JSONPosition{
		ToMove:               roleName(s.ToMove),
		WhiteCastling:        s.WhiteCastling.String(),
		BlackCastling:        s.BlackCastling.String(),
		EnPassant:            s.EnPassant,
		HalfMoves:            s.HalfMoves,
		FullMoves:            s.FullMoves,
		PieceCount:           s.PieceCount,
		Material:             s.Material(),
		InsufficientMaterial: processing.InsufficientMaterial(pos),
	}
}

// roleName returns "white" or "black".
func roleName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// JSONWriter writes processed lines in JSON format.
// It buffers results and writes them as a single report, sorted by
// index, on Close or Flush. In single mode each result is written
// immediately as its own document instead.
type JSONWriter struct {
	w       io.Writer
	results []Result
	single  bool
	emitted bool
}

// NewJSONWriter creates a new JSON writer.
// It batches results and writes one report on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]Result, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteResult buffers a result for the report (or writes immediately in
// single mode).
func (jw *JSONWriter) WriteResult(res Result) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(ResultToJSON(res))
	}

	jw.results = append(jw.results, res)
	return nil
}

// Flush writes all buffered results as one report, sorted by index so
// the report is deterministic regardless of completion order. A report
// is written at most once even when no results arrived.
func (jw *JSONWriter) Flush() error {
	if jw.single {
		return nil
	}
	if jw.emitted && len(jw.results) == 0 {
		return nil
	}

	sort.Slice(jw.results, func(i, j int) bool {
		return jw.results[i].Index < jw.results[j].Index
	})

	report := &JSONReport{
		Count:   len(jw.results),
		Results: make([]*JSONResult, 0, len(jw.results)),
	}
	for _, res := range jw.results {
		report.Results = append(report.Results, ResultToJSON(res))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(report)

	jw.results = jw.results[:0]
	jw.emitted = true

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
