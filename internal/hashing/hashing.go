// Package hashing provides position keys and duplicate detection for
// decoded positions.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/fen-extract-go/internal/chess"
)

var (
	sideKey        uint64
	enpassantKey   [chess.BoardSize]uint64
	castlingKey    [4][4]uint64
	pieceSquareKey [2][chess.NumPieces][chess.BoardSize * chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewSource(0))
	sideKey = r.Uint64()
	for i := range enpassantKey {
		enpassantKey[i] = r.Uint64()
	}
	for colour := range pieceSquareKey {
		for piece := chess.Pawn; piece < chess.NumPieces; piece++ {
			for sq := range pieceSquareKey[colour][piece] {
				pieceSquareKey[colour][piece][sq] = r.Uint64()
			}
		}
	}

	// One base key per single castling right; the table entry for a
	// rights pair XORs together the keys of the rights it contains.
	// The rights constants double as two-bit masks: KingSide is bit 0,
	// QueenSide is bit 1, BothSides is both.
	var castle [4]uint64
	for i := range castle {
		castle[i] = r.Uint64()
	}
	for w := range castlingKey {
		for b := range castlingKey[w] {
			for j := 0; j < 2; j++ {
				if w&(1<<j) != 0 {
					castlingKey[w][b] ^= castle[j]
				}
				if b&(1<<j) != 0 {
					castlingKey[w][b] ^= castle[2+j]
				}
			}
		}
	}
}

// PositionKey computes the Zobrist key of a position. The key covers
// the board, the side to move, the castling rights, and the en-passant
// file. The move counters and the en-passant row do not participate;
// callers that need full-record identity must confirm with Equal.
func PositionKey(pos chess.Position) uint64 {
	var key uint64

	if pos.ToMove == chess.White {
		key ^= sideKey
	}
	key ^= castlingKey[pos.WhiteCastling][pos.BlackCastling]
	if pos.EnPassant && pos.EPTarget.File >= 0 && pos.EPTarget.File < chess.BoardSize {
		key ^= enpassantKey[pos.EPTarget.File]
	}

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := pos.Board[row][col]
			if !sq.IsEmpty() {
				key ^= pieceSquareKey[sq.Colour][sq.Piece][row*chess.BoardSize+col]
			}
		}
	}

	return key
}

// Checker is the surface shared by the sequential and thread-safe
// detectors; the processing pipeline accepts either.
type Checker interface {
	CheckAndAdd(pos chess.Position) bool
	MarkSeen(pos chess.Position)
	DuplicateCount() int
	UniqueCount() int
	IsFull() bool
}

// DuplicateDetector tracks seen positions for duplicate detection.
// Candidate duplicates are found by position key and confirmed by
// structural equality, so two records are duplicates only when every
// decoded field matches, counters included.
type DuplicateDetector struct {
	// hashTable stores the recorded positions per key
	hashTable map[uint64][]chess.Position
	// maxCapacity bounds the number of recorded positions; 0 means unlimited
	maxCapacity int
	// stored is the number of recorded positions
	stored int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

var _ Checker = (*DuplicateDetector)(nil)

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]chess.Position),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if a position is a duplicate and records it.
// Returns true if the position was seen before. Once the detector is
// full, new positions are no longer recorded; duplicates of recorded
// positions are still detected.
func (d *DuplicateDetector) CheckAndAdd(pos chess.Position) bool {
	key := PositionKey(pos)
	for _, seen := range d.hashTable[key] {
		if seen.Equal(pos) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[key] = append(d.hashTable[key], pos)
	d.stored++
	return false
}

// MarkSeen records a position without counting it as a duplicate, even
// if it was recorded before. Use it to preload positions that should
// count as already seen.
func (d *DuplicateDetector) MarkSeen(pos chess.Position) {
	key := PositionKey(pos)
	for _, seen := range d.hashTable[key] {
		if seen.Equal(pos) {
			return
		}
	}

	if d.IsFull() {
		return
	}
	d.hashTable[key] = append(d.hashTable[key], pos)
	d.stored++
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of recorded distinct positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]chess.Position)
	d.stored = 0
	d.duplicateCount = 0
}
