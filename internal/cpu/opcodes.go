package cpu

type instruction uint8

const (
	instrADC instruction = iota + 1
	instrAND
	instrASL
	instrBCC
	instrBCS
	instrBEQ
	instrBIT
	instrBMI
	instrBNE
	instrBPL
	instrBRA
	instrBRK
	instrBRL
	instrBVC
	instrBVS
	instrCLC
	instrCLD
	instrCLI
	instrCLV
	instrCMP
	instrCOP
	instrCPX
	instrCPY
	instrDEC
	instrDEX
	instrDEY
	instrEOR
	instrINC
	instrINX
	instrINY
	instrJML
	instrJMP
	instrJSL
	instrJSR
	instrLDA
	instrLDX
	instrLDY
	instrLSR
	instrMVN
	instrMVP
	instrNOP
	instrORA
	instrPEA
	instrPEI
	instrPER
	instrPHA
	instrPHB
	instrPHD
	instrPHK
	instrPHP
	instrPHX
	instrPHY
	instrPLA
	instrPLB
	instrPLD
	instrPLP
	instrPLX
	instrPLY
	instrREP
	instrROL
	instrROR
	instrRTI
	instrRTL
	instrRTS
	instrSBC
	instrSEC
	instrSED
	instrSEI
	instrSEP
	instrSTA
	instrSTP
	instrSTX
	instrSTY
	instrSTZ
	instrTAX
	instrTAY
	instrTCD
	instrTCS
	instrTDC
	instrTRB
	instrTSB
	instrTSC
	instrTSX
	instrTXA
	instrTXS
	instrTXY
	instrTYA
	instrTYX
	instrWAI
	instrWDM
	instrXBA
	instrXCE
)

var instrNames = [...]string{
	instrADC: "ADC", instrAND: "AND", instrASL: "ASL", instrBCC: "BCC",
	instrBCS: "BCS", instrBEQ: "BEQ", instrBIT: "BIT", instrBMI: "BMI",
	instrBNE: "BNE", instrBPL: "BPL", instrBRA: "BRA", instrBRK: "BRK",
	instrBRL: "BRL", instrBVC: "BVC", instrBVS: "BVS", instrCLC: "CLC",
	instrCLD: "CLD", instrCLI: "CLI", instrCLV: "CLV", instrCMP: "CMP",
	instrCOP: "COP", instrCPX: "CPX", instrCPY: "CPY", instrDEC: "DEC",
	instrDEX: "DEX", instrDEY: "DEY", instrEOR: "EOR", instrINC: "INC",
	instrINX: "INX", instrINY: "INY", instrJML: "JML", instrJMP: "JMP",
	instrJSL: "JSL", instrJSR: "JSR", instrLDA: "LDA", instrLDX: "LDX",
	instrLDY: "LDY", instrLSR: "LSR", instrMVN: "MVN", instrMVP: "MVP",
	instrNOP: "NOP", instrORA: "ORA", instrPEA: "PEA", instrPEI: "PEI",
	instrPER: "PER", instrPHA: "PHA", instrPHB: "PHB", instrPHD: "PHD",
	instrPHK: "PHK", instrPHP: "PHP", instrPHX: "PHX", instrPHY: "PHY",
	instrPLA: "PLA", instrPLB: "PLB", instrPLD: "PLD", instrPLP: "PLP",
	instrPLX: "PLX", instrPLY: "PLY", instrREP: "REP", instrROL: "ROL",
	instrROR: "ROR", instrRTI: "RTI", instrRTL: "RTL", instrRTS: "RTS",
	instrSBC: "SBC", instrSEC: "SEC", instrSED: "SED", instrSEI: "SEI",
	instrSEP: "SEP", instrSTA: "STA", instrSTP: "STP", instrSTX: "STX",
	instrSTY: "STY", instrSTZ: "STZ", instrTAX: "TAX", instrTAY: "TAY",
	instrTCD: "TCD", instrTCS: "TCS", instrTDC: "TDC", instrTRB: "TRB",
	instrTSB: "TSB", instrTSC: "TSC", instrTSX: "TSX", instrTXA: "TXA",
	instrTXS: "TXS", instrTXY: "TXY", instrTYA: "TYA", instrTYX: "TYX",
	instrWAI: "WAI", instrWDM: "WDM", instrXBA: "XBA", instrXCE: "XCE",
}

func (in instruction) String() string {
	if int(in) < len(instrNames) && instrNames[in] != "" {
		return instrNames[in]
	}
	return "???"
}

// width is the operand size an instruction works with.
type width uint8

const (
	widthAcc   width = iota // 8 or 16 bits, follows M
	widthIndex              // 8 or 16 bits, follows X
	width8
	width16
)

func (in instruction) width() width {
	switch in {
	case instrLDX, instrLDY, instrSTX, instrSTY, instrCPX, instrCPY:
		return widthIndex
	case instrREP, instrSEP, instrCOP, instrBRK, instrWDM:
		return width8
	case instrPEA, instrPEI, instrPER, instrJMP, instrJML, instrJSR, instrJSL:
		return width16
	}
	return widthAcc
}

// readsOperand reports whether the instruction needs the operand value
// fetched from the effective address. Stores, jumps and address pushes
// must not touch the bus at the target.
func (in instruction) readsOperand() bool {
	switch in {
	case instrSTA, instrSTX, instrSTY, instrSTZ,
		instrJMP, instrJML, instrJSR, instrJSL,
		instrPEA, instrPEI, instrPER, instrMVN, instrMVP:
		return false
	}
	return true
}

// Opcode is one decoded entry of the opcode table.
type Opcode struct {
	instr  instruction
	mode   addrMode
	cycles uint8
}

// Mnemonic returns the three letter instruction name.
func (o Opcode) Mnemonic() string {
	return o.instr.String()
}

// Mode returns the addressing mode name.
func (o Opcode) Mode() string {
	return o.mode.String()
}

// Cycles returns the base cycle count before addressing penalties.
func (o Opcode) Cycles() uint8 {
	return o.cycles
}

// Decode looks up an opcode byte. ok is false for opcodes without a
// defined entry.
func Decode(b uint8) (op Opcode, ok bool) {
	op = opcodes[b]
	return op, op.instr != 0
}
