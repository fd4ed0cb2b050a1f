//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package attacks

import (
	"math/bits"

	"github.com/frankkopp/branchmate/internal/types"
)

// magic holds the perfect-hash parameters for one square of one slider
// piece type: the relevant-occupancy mask, the magic multiplier, the
// shift that turns occupancy*magic into a table index, and the slice of
// the shared attack table this square owns.
type magic struct {
	mask    types.Bitboard
	number  uint64
	shift   uint
	attacks []types.Bitboard
}

func (m *magic) index(occupied types.Bitboard) int {
	relevant := uint64(occupied & m.mask)
	return int((relevant * m.number) >> m.shift)
}

var (
	bishopMagics [types.SquareLength]magic
	rookMagics   [types.SquareLength]magic
)

// bishopRelevantBits and rookRelevantBits give the population count of
// the relevant occupancy mask for every square, used to size each
// square's slice of the shared attack table.
var bishopRelevantBits = [64]uint{
	6, 5, 5, 5, 5, 5, 5, 6,
	5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 9, 9, 7, 5, 5,
	5, 5, 7, 7, 7, 7, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5,
	6, 5, 5, 5, 5, 5, 5, 6,
}

var rookRelevantBits = [64]uint{
	12, 11, 11, 11, 11, 11, 11, 12,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	11, 10, 10, 10, 10, 10, 10, 11,
	12, 11, 11, 11, 11, 11, 11, 12,
}

// rookMagicNumbers and bishopMagicNumbers are known-good magic
// multipliers, one per square. FindMagicNumber can re-derive equivalent
// numbers from scratch; these baked-in values just avoid paying that
// search cost at every process start.
var rookMagicNumbers = [64]uint64{
	0x8a80104000800020, 0x140002000100040, 0x2801880a0017001, 0x100081001000420,
	0x200020010080420, 0x3001c0002010008, 0x8480008002000100, 0x2080088004402900,
	0x800098204000, 0x2024401000200040, 0x100802000801000, 0x120800800801000,
	0x208808088000400, 0x2802200800400, 0x2200800100020080, 0x801000060821100,
	0x80044006422000, 0x100808020004000, 0x12108a0010204200, 0x140848010000802,
	0x481828014002800, 0x8094004002004100, 0x4010040010010802, 0x20008806104,
	0x100400080208000, 0x2040002120081000, 0x21200680100081, 0x20100080080080,
	0x2000a00200410, 0x20080800400, 0x80088400100102, 0x80004600042881,
	0x4040008040800020, 0x440003000200801, 0x4200011004500, 0x188020010100100,
	0x14800401802800, 0x2080040080800200, 0x124080204001001, 0x200046502000484,
	0x480400080088020, 0x1000422010034000, 0x30200100110040, 0x100021010009,
	0x2002080100110004, 0x202008004008002, 0x20020004010100, 0x2048440040820001,
	0x101002200408200, 0x40802000401080, 0x4008142004410100, 0x2060820c0120200,
	0x1001004080100, 0x20c020080040080, 0x2935610830022400, 0x44440041009200,
	0x280001040802101, 0x2100190040002085, 0x80c0084100102001, 0x4024081001000421,
	0x20030a0244872, 0x12001008414402, 0x2006104900a0804, 0x1004081002402,
}

var bishopMagicNumbers = [64]uint64{
	0x40040844404084, 0x2004208a004208, 0x10190041080202, 0x108060845042010,
	0x581104180800210, 0x2112080446200010, 0x1080820820060210, 0x3c0808410220200,
	0x4050404440404, 0x21001420088, 0x24d0080801082102, 0x1020a0a020400,
	0x40308200402, 0x4011002100800, 0x401484104104005, 0x801010402020200,
	0x400210c3880100, 0x404022024108200, 0x810018200204102, 0x4002801a02003,
	0x85040820080400, 0x810102c808880400, 0xe900410884800, 0x8002020480840102,
	0x220200865090201, 0x2010100a02021202, 0x152048408022401, 0x20080002081110,
	0x4001001021004000, 0x800040400a011002, 0xe4004081011002, 0x1c004001012080,
	0x8004200962a00220, 0x8422100208500202, 0x2000402200300c08, 0x8646020080080080,
	0x80020a0200100808, 0x2010004880111000, 0x623000a080011400, 0x42008c0340209202,
	0x209188240001000, 0x400408a884001800, 0x110400a6080400, 0x1840060a44020800,
	0x90080104000041, 0x201011000808101, 0x1a2208080504f080, 0x8012020600211212,
	0x500861011240000, 0x180806108200800, 0x4000020e01040044, 0x300000261044000a,
	0x802241102020002, 0x20906061210001, 0x5a84841004010310, 0x4010801011c04,
	0xa010109502200, 0x4a02012000, 0x500201010098b028, 0x8040002811040900,
	0x28000010020204, 0x6000020202d0240, 0x8918844842082200, 0x4010011029020020,
}

// maskBishopAttacks builds the relevant-occupancy mask for a bishop on
// sq: every square reachable along a diagonal ray, stopping one square
// short of the board edge since the edge square itself never changes
// which squares are attacked.
func maskBishopAttacks(sq types.Square) types.Bitboard {
	tr, tf := sq.Rank(), sq.File()
	var attacks types.Bitboard
	for r, f := tr+1, tf+1; r <= 6 && f <= 6; r, f = r+1, f+1 {
		attacks |= types.SquareOf(f, r).Bb()
	}
	for r, f := tr-1, tf+1; r >= 1 && f <= 6; r, f = r-1, f+1 {
		attacks |= types.SquareOf(f, r).Bb()
	}
	for r, f := tr+1, tf-1; r <= 6 && f >= 1; r, f = r+1, f-1 {
		attacks |= types.SquareOf(f, r).Bb()
	}
	for r, f := tr-1, tf-1; r >= 1 && f >= 1; r, f = r-1, f-1 {
		attacks |= types.SquareOf(f, r).Bb()
	}
	return attacks
}

// maskRookAttacks is maskBishopAttacks' straight-line counterpart.
func maskRookAttacks(sq types.Square) types.Bitboard {
	tr, tf := sq.Rank(), sq.File()
	var attacks types.Bitboard
	for r := tr + 1; r <= 6; r++ {
		attacks |= types.SquareOf(tf, r).Bb()
	}
	for r := tr - 1; r >= 1; r-- {
		attacks |= types.SquareOf(tf, r).Bb()
	}
	for f := tf + 1; f <= 6; f++ {
		attacks |= types.SquareOf(f, tr).Bb()
	}
	for f := tf - 1; f >= 1; f-- {
		attacks |= types.SquareOf(f, tr).Bb()
	}
	return attacks
}

// bishopAttacksOnFly and rookAttacksOnFly trace rays all the way to the
// board edge, stopping early when they hit an occupied square (the
// blocker itself is included, since it may be a capturable piece). They
// are the ground truth used both to fill the magic table and, via
// FindMagicNumber, to verify a candidate magic number is collision-free.
func bishopAttacksOnFly(sq types.Square, block types.Bitboard) types.Bitboard {
	tr, tf := sq.Rank(), sq.File()
	var attacks types.Bitboard
	for r, f := tr+1, tf+1; r < 8 && f < 8; r, f = r+1, f+1 {
		b := types.SquareOf(f, r).Bb()
		attacks |= b
		if b&block != 0 {
			break
		}
	}
	for r, f := tr-1, tf+1; r >= 0 && f < 8; r, f = r-1, f+1 {
		b := types.SquareOf(f, r).Bb()
		attacks |= b
		if b&block != 0 {
			break
		}
	}
	for r, f := tr+1, tf-1; r < 8 && f >= 0; r, f = r+1, f-1 {
		b := types.SquareOf(f, r).Bb()
		attacks |= b
		if b&block != 0 {
			break
		}
	}
	for r, f := tr-1, tf-1; r >= 0 && f >= 0; r, f = r-1, f-1 {
		b := types.SquareOf(f, r).Bb()
		attacks |= b
		if b&block != 0 {
			break
		}
	}
	return attacks
}

func rookAttacksOnFly(sq types.Square, block types.Bitboard) types.Bitboard {
	tr, tf := sq.Rank(), sq.File()
	var attacks types.Bitboard
	for r := tr + 1; r < 8; r++ {
		b := types.SquareOf(tf, r).Bb()
		attacks |= b
		if b&block != 0 {
			break
		}
	}
	for r := tr - 1; r >= 0; r-- {
		b := types.SquareOf(tf, r).Bb()
		attacks |= b
		if b&block != 0 {
			break
		}
	}
	for f := tf + 1; f < 8; f++ {
		b := types.SquareOf(f, tr).Bb()
		attacks |= b
		if b&block != 0 {
			break
		}
	}
	for f := tf - 1; f >= 0; f-- {
		b := types.SquareOf(f, tr).Bb()
		attacks |= b
		if b&block != 0 {
			break
		}
	}
	return attacks
}

// setOccupancy decodes index (0 <= index < 1<<bitsInMask) into one
// concrete occupancy subset of mask, used to enumerate every possible
// blocker configuration a square's relevant mask can take on.
func setOccupancy(index int, bitsInMask uint, mask types.Bitboard) types.Bitboard {
	var occupancy types.Bitboard
	for count := uint(0); count < bitsInMask; count++ {
		sq := mask.Lsb()
		mask = mask.Clear(sq)
		if index&(1<<count) != 0 {
			occupancy = occupancy.Set(sq)
		}
	}
	return occupancy
}

// FindMagicNumber brute-forces a collision-free magic multiplier for
// sq's relevant-occupancy mask. It is not called during normal package
// initialization - the baked tables above already hold known-good
// numbers - but it lets a caller re-derive (and sanity-check) a number
// for any square. Each call restarts the generator from its fixed seed,
// so it returns the same collision-free number for a square on every
// run; that number generally differs from the baked one.
func FindMagicNumber(sq types.Square, relevantBits uint, bishop bool) uint64 {
	var attackMask types.Bitboard
	if bishop {
		attackMask = maskBishopAttacks(sq)
	} else {
		attackMask = maskRookAttacks(sq)
	}

	occupancyCount := 1 << relevantBits
	occupancies := make([]types.Bitboard, occupancyCount)
	attacks := make([]types.Bitboard, occupancyCount)
	for index := 0; index < occupancyCount; index++ {
		occupancies[index] = setOccupancy(index, relevantBits, attackMask)
		if bishop {
			attacks[index] = bishopAttacksOnFly(sq, occupancies[index])
		} else {
			attacks[index] = rookAttacksOnFly(sq, occupancies[index])
		}
	}

	rng := newPrng()
	usedAttacks := make([]types.Bitboard, occupancyCount)
	for try := 0; try < 100000000; try++ {
		candidate := rng.magicCandidate()
		if bits.OnesCount64(uint64(attackMask)*candidate&0xFF00000000000000) < 6 {
			continue
		}
		for i := range usedAttacks {
			usedAttacks[i] = types.BbZero
		}
		fail := false
		for index := 0; index < occupancyCount && !fail; index++ {
			magicIndex := int((uint64(occupancies[index]) * candidate) >> (64 - relevantBits))
			if usedAttacks[magicIndex] == types.BbZero {
				usedAttacks[magicIndex] = attacks[index]
			} else if usedAttacks[magicIndex] != attacks[index] {
				fail = true
			}
		}
		if !fail {
			return candidate
		}
	}
	return 0
}

// initSlidingAttacks fills the per-square magic structs and their
// shared attack tables from the baked-in mask and magic-number data.
func initSlidingAttacks() {
	for sq := types.Square(0); sq < types.SquareLength; sq++ {
		bMask := maskBishopAttacks(sq)
		bBits := bishopRelevantBits[sq]
		bTable := make([]types.Bitboard, 1<<bBits)
		for index := 0; index < 1<<bBits; index++ {
			occupancy := setOccupancy(index, bBits, bMask)
			magicIndex := (uint64(occupancy) * bishopMagicNumbers[sq]) >> (64 - bBits)
			bTable[magicIndex] = bishopAttacksOnFly(sq, occupancy)
		}
		bishopMagics[sq] = magic{
			mask:    bMask,
			number:  bishopMagicNumbers[sq],
			shift:   64 - bBits,
			attacks: bTable,
		}

		rMask := maskRookAttacks(sq)
		rBits := rookRelevantBits[sq]
		rTable := make([]types.Bitboard, 1<<rBits)
		for index := 0; index < 1<<rBits; index++ {
			occupancy := setOccupancy(index, rBits, rMask)
			magicIndex := (uint64(occupancy) * rookMagicNumbers[sq]) >> (64 - rBits)
			rTable[magicIndex] = rookAttacksOnFly(sq, occupancy)
		}
		rookMagics[sq] = magic{
			mask:    rMask,
			number:  rookMagicNumbers[sq],
			shift:   64 - rBits,
			attacks: rTable,
		}
	}
}

// GetBishopAttacks returns the bishop attack set from sq given the
// current board occupancy.
func GetBishopAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &bishopMagics[sq]
	return m.attacks[m.index(occupied)]
}

// GetRookAttacks returns the rook attack set from sq given the current
// board occupancy.
func GetRookAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	m := &rookMagics[sq]
	return m.attacks[m.index(occupied)]
}

// GetQueenAttacks is the union of the bishop and rook attack sets.
func GetQueenAttacks(sq types.Square, occupied types.Bitboard) types.Bitboard {
	return GetBishopAttacks(sq, occupied) | GetRookAttacks(sq, occupied)
}
