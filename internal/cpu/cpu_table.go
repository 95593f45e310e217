/*
 * psx - opcode dispatch tables
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

package cpu

// Primary opcodes (instruction bits [31:26]).
const (
	opSPECIAL = 0x00
	opBCONDZ  = 0x01
	opJ       = 0x02
	opJAL     = 0x03
	opBEQ     = 0x04
	opBNE     = 0x05
	opBLEZ    = 0x06
	opBGTZ    = 0x07
	opADDI    = 0x08
	opADDIU   = 0x09
	opSLTI    = 0x0A
	opSLTIU   = 0x0B
	opANDI    = 0x0C
	opORI     = 0x0D
	opLUI     = 0x0F
	opCOP0    = 0x10
	opLB      = 0x20
	opLH      = 0x21
	opLW      = 0x23
	opLBU     = 0x24
	opLHU     = 0x25
	opSB      = 0x28
	opSH      = 0x29
	opSW      = 0x2B
)

// Secondary opcodes (instruction bits [5:0], valid when Opcode() == opSPECIAL).
const (
	secSLL     = 0x00
	secSRL     = 0x02
	secSRA     = 0x03
	secSLLV    = 0x04
	secSRLV    = 0x06
	secSRAV    = 0x07
	secJR      = 0x08
	secJALR    = 0x09
	secSYSCALL = 0x0C
	secMFHI    = 0x10
	secMTHI    = 0x11
	secMFLO    = 0x12
	secMTLO    = 0x13
	secDIV     = 0x1A
	secDIVU    = 0x1B
	secADD     = 0x20
	secADDU    = 0x21
	secSUB     = 0x22
	secSUBU    = 0x23
	secAND     = 0x24
	secOR      = 0x25
	secNOR     = 0x27
	secSLT     = 0x2A
	secSLTU    = 0x2B
)

// COP0 sub-opcodes (instruction bits [25:21], the CopOp() field).
const (
	copMFC0 = 0x00
	copMTC0 = 0x04
	copRFE  = 0x10
)

// createTables builds the primary and secondary dispatch tables. The
// MIPS primary opcode space is sparse, so two 64-entry arrays of method
// values (rather than a single 256-entry table keyed on a full opcode
// byte) cover it without padding out unused slots.
func (c *Cpu) createTables() {
	c.table[opBCONDZ] = (*Cpu).opBcondZ
	c.table[opJ] = (*Cpu).opJ
	c.table[opJAL] = (*Cpu).opJAL
	c.table[opBEQ] = (*Cpu).opBEQ
	c.table[opBNE] = (*Cpu).opBNE
	c.table[opBLEZ] = (*Cpu).opBLEZ
	c.table[opBGTZ] = (*Cpu).opBGTZ
	c.table[opADDI] = (*Cpu).opADDI
	c.table[opADDIU] = (*Cpu).opADDIU
	c.table[opSLTI] = (*Cpu).opSLTI
	c.table[opSLTIU] = (*Cpu).opSLTIU
	c.table[opANDI] = (*Cpu).opANDI
	c.table[opORI] = (*Cpu).opORI
	c.table[opLUI] = (*Cpu).opLUI
	c.table[opCOP0] = (*Cpu).opCOP0
	c.table[opLB] = (*Cpu).opLB
	c.table[opLH] = (*Cpu).opLH
	c.table[opLW] = (*Cpu).opLW
	c.table[opLBU] = (*Cpu).opLBU
	c.table[opLHU] = (*Cpu).opLHU
	c.table[opSB] = (*Cpu).opSB
	c.table[opSH] = (*Cpu).opSH
	c.table[opSW] = (*Cpu).opSW

	c.secTable[secSLL] = (*Cpu).opSLL
	c.secTable[secSRL] = (*Cpu).opSRL
	c.secTable[secSRA] = (*Cpu).opSRA
	c.secTable[secSLLV] = (*Cpu).opSLLV
	c.secTable[secSRLV] = (*Cpu).opSRLV
	c.secTable[secSRAV] = (*Cpu).opSRAV
	c.secTable[secJR] = (*Cpu).opJR
	c.secTable[secJALR] = (*Cpu).opJALR
	c.secTable[secSYSCALL] = (*Cpu).opSYSCALL
	c.secTable[secMFHI] = (*Cpu).opMFHI
	c.secTable[secMTHI] = (*Cpu).opMTHI
	c.secTable[secMFLO] = (*Cpu).opMFLO
	c.secTable[secMTLO] = (*Cpu).opMTLO
	c.secTable[secDIV] = (*Cpu).opDIV
	c.secTable[secDIVU] = (*Cpu).opDIVU
	c.secTable[secADD] = (*Cpu).opADD
	c.secTable[secADDU] = (*Cpu).opADDU
	c.secTable[secSUB] = (*Cpu).opSUB
	c.secTable[secSUBU] = (*Cpu).opSUBU
	c.secTable[secAND] = (*Cpu).opAND
	c.secTable[secOR] = (*Cpu).opOR
	c.secTable[secNOR] = (*Cpu).opNOR
	c.secTable[secSLT] = (*Cpu).opSLT
	c.secTable[secSLTU] = (*Cpu).opSLTU
}
