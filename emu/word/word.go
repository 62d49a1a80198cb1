/*
 * UY1 - 48 bit word algebra.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package word

import (
	"math/big"
	"math/bits"
)

const (
	// Machine word is 48 bits, held in the low bits of a uint64.
	Bits = 48

	// Mask48 keeps the low 48 bits of a host integer.
	Mask48 uint64 = (1 << Bits) - 1

	// SignBit is bit 47, the sign of a word.
	SignBit uint64 = 1 << (Bits - 1)

	// Instructions carry an 8 bit opcode over a 40 bit operand.
	OperandBits        = 40
	OperandMask uint64 = (1 << OperandBits) - 1
	operandSign uint64 = 1 << (OperandBits - 1)
)

// Mask a host integer down to a machine word.
func Mask(value int64) uint64 {
	return uint64(value) & Mask48
}

// SignExtend interprets bit 47 as the sign and widens to a host integer.
func SignExtend(w uint64) int64 {
	w &= Mask48
	if (w & SignBit) != 0 {
		return int64(w | ^Mask48)
	}
	return int64(w)
}

// Negative reports whether bit 47 of the word is set.
func Negative(w uint64) bool {
	return (w & SignBit) != 0
}

// Decode splits an instruction word into opcode and operand.
func Decode(inst uint64) (int, uint64) {
	return int((inst >> OperandBits) & 0xff), inst & OperandMask
}

// Encode builds an instruction word from opcode and operand.
func Encode(opcode int, operand uint64) uint64 {
	return ((uint64(opcode) << OperandBits) | (operand & OperandMask)) & Mask48
}

// SignedOperand interprets bit 39 of an operand as the sign.
func SignedOperand(operand uint64) int64 {
	operand &= OperandMask
	if (operand & operandSign) != 0 {
		return int64(operand | ^OperandMask)
	}
	return int64(operand)
}

// MulPair multiplies two words as signed values and returns the 96 bit
// product split into high and low words.
func MulPair(a, b uint64) (uint64, uint64) {
	va := SignExtend(a)
	vb := SignExtend(b)
	hi, lo := bits.Mul64(uint64(va), uint64(vb))
	// Fix up the unsigned product for negative factors.
	if va < 0 {
		hi -= uint64(vb)
	}
	if vb < 0 {
		hi -= uint64(va)
	}
	return ((lo >> Bits) | (hi << (64 - Bits))) & Mask48, lo & Mask48
}

// ShiftPair treats (hi,lo) as one 96 bit signed value, hi holding the upper
// word. Positive counts shift left, negative counts shift right with sign
// fill. Returns the new pair.
func ShiftPair(hi, lo uint64, count int64) (uint64, uint64) {
	if count == 0 {
		return hi & Mask48, lo & Mask48
	}

	// Spread the pair over a 128 bit value to do the shift at full width.
	vl := (hi << Bits) | (lo & Mask48)
	vh := uint64(SignExtend(hi) >> (64 - Bits))

	if count > 0 {
		n := uint(min(count, 127))
		switch {
		case n >= 64:
			vh = vl << (n - 64)
			vl = 0
		default:
			vh = (vh << n) | (vl >> (64 - n))
			vl <<= n
		}
	} else {
		n := uint(min(-count, 127))
		switch {
		case n >= 64:
			vl = uint64(int64(vh) >> min(n-64, 63))
			vh = uint64(int64(vh) >> 63)
		default:
			vl = (vl >> n) | (vh << (64 - n))
			vh = uint64(int64(vh) >> n)
		}
	}
	return ((vl >> Bits) | (vh << (64 - Bits))) & Mask48, vl & Mask48
}

var fracMask = new(big.Int).SetUint64(Mask48)

// DivFrac divides a by b with the binary points aligned, treating both as
// 1.47 fixed point fractions. The quotient wraps at 48 bits.
func DivFrac(a, b uint64) uint64 {
	num := big.NewInt(SignExtend(a))
	num.Lsh(num, Bits-1)
	num.Quo(num, big.NewInt(SignExtend(b)))
	num.And(num, fracMask)
	return num.Uint64()
}
