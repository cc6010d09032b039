package cpu

// opcodes is the decode table of the 65C816.
var opcodes = [0x100]Opcode{
	0x00: {instrBRK, addrModeIMM, 7},
	0x01: {instrORA, addrModeDPIX, 6},
	0x02: {instrCOP, addrModeIMM, 7},
	0x03: {instrORA, addrModeSR, 4},
	0x04: {instrTSB, addrModeDP, 5},
	0x05: {instrORA, addrModeDP, 3},
	0x06: {instrASL, addrModeDP, 5},
	0x07: {instrORA, addrModeDPIL, 6},
	0x08: {instrPHP, addrModeIMP, 3},
	0x09: {instrORA, addrModeIMM, 2},
	0x0A: {instrASL, addrModeACC, 2},
	0x0B: {instrPHD, addrModeIMP, 4},
	0x0C: {instrTSB, addrModeABS, 6},
	0x0D: {instrORA, addrModeABS, 4},
	0x0E: {instrASL, addrModeABS, 6},
	0x0F: {instrORA, addrModeABSL, 5},

	0x10: {instrBPL, addrModeREL, 2},
	0x11: {instrORA, addrModeDPIY, 5},
	0x12: {instrORA, addrModeDPI, 5},
	0x13: {instrORA, addrModeSRIY, 7},
	0x14: {instrTRB, addrModeDP, 5},
	0x15: {instrORA, addrModeDPX, 4},
	0x16: {instrASL, addrModeDPX, 6},
	0x17: {instrORA, addrModeDPILY, 6},
	0x18: {instrCLC, addrModeIMP, 2},
	0x19: {instrORA, addrModeABSY, 4},
	0x1A: {instrINC, addrModeACC, 2},
	0x1B: {instrTCS, addrModeIMP, 2},
	0x1C: {instrTRB, addrModeABS, 6},
	0x1D: {instrORA, addrModeABSX, 4},
	0x1E: {instrASL, addrModeABSX, 7},
	0x1F: {instrORA, addrModeABSLX, 5},

	0x20: {instrJSR, addrModeABS, 6},
	0x21: {instrAND, addrModeDPIX, 6},
	0x22: {instrJSL, addrModeABSL, 8},
	0x23: {instrAND, addrModeSR, 4},
	0x24: {instrBIT, addrModeDP, 3},
	0x25: {instrAND, addrModeDP, 3},
	0x26: {instrROL, addrModeDP, 5},
	0x27: {instrAND, addrModeDPIL, 6},
	0x28: {instrPLP, addrModeIMP, 4},
	0x29: {instrAND, addrModeIMM, 2},
	0x2A: {instrROL, addrModeACC, 2},
	0x2B: {instrPLD, addrModeIMP, 5},
	0x2C: {instrBIT, addrModeABS, 4},
	0x2D: {instrAND, addrModeABS, 4},
	0x2E: {instrROL, addrModeABS, 6},
	0x2F: {instrAND, addrModeABSL, 5},

	0x30: {instrBMI, addrModeREL, 2},
	0x31: {instrAND, addrModeDPIY, 5},
	0x32: {instrAND, addrModeDPI, 5},
	0x33: {instrAND, addrModeSRIY, 7},
	0x34: {instrBIT, addrModeDPX, 4},
	0x35: {instrAND, addrModeDPX, 4},
	0x36: {instrROL, addrModeDPX, 6},
	0x37: {instrAND, addrModeDPILY, 6},
	0x38: {instrSEC, addrModeIMP, 2},
	0x39: {instrAND, addrModeABSY, 4},
	0x3A: {instrDEC, addrModeACC, 2},
	0x3B: {instrTSC, addrModeIMP, 2},
	0x3C: {instrBIT, addrModeABSX, 4},
	0x3D: {instrAND, addrModeABSX, 4},
	0x3E: {instrROL, addrModeABSX, 7},
	0x3F: {instrAND, addrModeABSLX, 5},

	0x40: {instrRTI, addrModeIMP, 6},
	0x41: {instrEOR, addrModeDPIX, 6},
	0x42: {instrWDM, addrModeIMM, 2},
	0x43: {instrEOR, addrModeSR, 4},
	0x44: {instrMVP, addrModeBLK, 7},
	0x45: {instrEOR, addrModeDP, 3},
	0x46: {instrLSR, addrModeDP, 5},
	0x47: {instrEOR, addrModeDPIL, 6},
	0x48: {instrPHA, addrModeIMP, 3},
	0x49: {instrEOR, addrModeIMM, 2},
	0x4A: {instrLSR, addrModeACC, 2},
	0x4B: {instrPHK, addrModeIMP, 3},
	0x4C: {instrJMP, addrModeABS, 3},
	0x4D: {instrEOR, addrModeABS, 4},
	0x4E: {instrLSR, addrModeABS, 6},
	0x4F: {instrEOR, addrModeABSL, 5},

	0x50: {instrBVC, addrModeREL, 2},
	0x51: {instrEOR, addrModeDPIY, 5},
	0x52: {instrEOR, addrModeDPI, 5},
	0x53: {instrEOR, addrModeSRIY, 7},
	0x54: {instrMVN, addrModeBLK, 7},
	0x55: {instrEOR, addrModeDPX, 4},
	0x56: {instrLSR, addrModeDPX, 6},
	0x57: {instrEOR, addrModeDPILY, 6},
	0x58: {instrCLI, addrModeIMP, 2},
	0x59: {instrEOR, addrModeABSY, 4},
	0x5A: {instrPHY, addrModeIMP, 3},
	0x5B: {instrTCD, addrModeIMP, 2},
	0x5C: {instrJML, addrModeABSL, 4},
	0x5D: {instrEOR, addrModeABSX, 4},
	0x5E: {instrLSR, addrModeABSX, 7},
	0x5F: {instrEOR, addrModeABSLX, 5},

	0x60: {instrRTS, addrModeIMP, 6},
	0x61: {instrADC, addrModeDPIX, 6},
	0x62: {instrPER, addrModeRELL, 6},
	0x63: {instrADC, addrModeSR, 4},
	0x64: {instrSTZ, addrModeDP, 3},
	0x65: {instrADC, addrModeDP, 3},
	0x66: {instrROR, addrModeDP, 5},
	0x67: {instrADC, addrModeDPIL, 6},
	0x68: {instrPLA, addrModeIMP, 4},
	0x69: {instrADC, addrModeIMM, 2},
	0x6A: {instrROR, addrModeACC, 2},
	0x6B: {instrRTL, addrModeIMP, 6},
	0x6C: {instrJMP, addrModeABSI, 5},
	0x6D: {instrADC, addrModeABS, 4},
	0x6E: {instrROR, addrModeABS, 6},
	0x6F: {instrADC, addrModeABSL, 5},

	0x70: {instrBVS, addrModeREL, 2},
	0x71: {instrADC, addrModeDPIY, 5},
	0x72: {instrADC, addrModeDPI, 5},
	0x73: {instrADC, addrModeSRIY, 7},
	0x74: {instrSTZ, addrModeDPX, 4},
	0x75: {instrADC, addrModeDPX, 4},
	0x76: {instrROR, addrModeDPX, 6},
	0x77: {instrADC, addrModeDPILY, 6},
	0x78: {instrSEI, addrModeIMP, 2},
	0x79: {instrADC, addrModeABSY, 4},
	0x7A: {instrPLY, addrModeIMP, 4},
	0x7B: {instrTDC, addrModeIMP, 2},
	0x7C: {instrJMP, addrModeABSIX, 6},
	0x7D: {instrADC, addrModeABSX, 4},
	0x7E: {instrROR, addrModeABSX, 7},
	0x7F: {instrADC, addrModeABSLX, 5},

	0x80: {instrBRA, addrModeREL, 2},
	0x81: {instrSTA, addrModeDPIX, 6},
	0x82: {instrBRL, addrModeRELL, 4},
	0x83: {instrSTA, addrModeSR, 4},
	0x84: {instrSTY, addrModeDP, 3},
	0x85: {instrSTA, addrModeDP, 3},
	0x86: {instrSTX, addrModeDP, 3},
	0x87: {instrSTA, addrModeDPIL, 6},
	0x88: {instrDEY, addrModeIMP, 2},
	0x89: {instrBIT, addrModeIMM, 2},
	0x8A: {instrTXA, addrModeIMP, 2},
	0x8B: {instrPHB, addrModeIMP, 3},
	0x8C: {instrSTY, addrModeABS, 4},
	0x8D: {instrSTA, addrModeABS, 4},
	0x8E: {instrSTX, addrModeABS, 4},
	0x8F: {instrSTA, addrModeABSL, 5},

	0x90: {instrBCC, addrModeREL, 2},
	0x91: {instrSTA, addrModeDPIY, 6},
	0x92: {instrSTA, addrModeDPI, 5},
	0x93: {instrSTA, addrModeSRIY, 7},
	0x94: {instrSTY, addrModeDPX, 4},
	0x95: {instrSTA, addrModeDPX, 4},
	0x96: {instrSTX, addrModeDPY, 4},
	0x97: {instrSTA, addrModeDPILY, 6},
	0x98: {instrTYA, addrModeIMP, 2},
	0x99: {instrSTA, addrModeABSY, 5},
	0x9A: {instrTXS, addrModeIMP, 2},
	0x9B: {instrTXY, addrModeIMP, 2},
	0x9C: {instrSTZ, addrModeABS, 4},
	0x9D: {instrSTA, addrModeABSX, 5},
	0x9E: {instrSTZ, addrModeABSX, 5},
	0x9F: {instrSTA, addrModeABSLX, 5},

	0xA0: {instrLDY, addrModeIMM, 2},
	0xA1: {instrLDA, addrModeDPIX, 6},
	0xA2: {instrLDX, addrModeIMM, 2},
	0xA3: {instrLDA, addrModeSR, 4},
	0xA4: {instrLDY, addrModeDP, 3},
	0xA5: {instrLDA, addrModeDP, 3},
	0xA6: {instrLDX, addrModeDP, 3},
	0xA7: {instrLDA, addrModeDPIL, 6},
	0xA8: {instrTAY, addrModeIMP, 2},
	0xA9: {instrLDA, addrModeIMM, 2},
	0xAA: {instrTAX, addrModeIMP, 2},
	0xAB: {instrPLB, addrModeIMP, 4},
	0xAC: {instrLDY, addrModeABS, 4},
	0xAD: {instrLDA, addrModeABS, 4},
	0xAE: {instrLDX, addrModeABS, 4},
	0xAF: {instrLDA, addrModeABSL, 5},

	0xB0: {instrBCS, addrModeREL, 2},
	0xB1: {instrLDA, addrModeDPIY, 5},
	0xB2: {instrLDA, addrModeDPI, 5},
	0xB3: {instrLDA, addrModeSRIY, 7},
	0xB4: {instrLDY, addrModeDPX, 4},
	0xB5: {instrLDA, addrModeDPX, 4},
	0xB6: {instrLDX, addrModeDPY, 4},
	0xB7: {instrLDA, addrModeDPILY, 6},
	0xB8: {instrCLV, addrModeIMP, 2},
	0xB9: {instrLDA, addrModeABSY, 4},
	0xBA: {instrTSX, addrModeIMP, 2},
	0xBB: {instrTYX, addrModeIMP, 2},
	0xBC: {instrLDY, addrModeABSX, 4},
	0xBD: {instrLDA, addrModeABSX, 4},
	0xBE: {instrLDX, addrModeABSY, 4},
	0xBF: {instrLDA, addrModeABSLX, 5},

	0xC0: {instrCPY, addrModeIMM, 2},
	0xC1: {instrCMP, addrModeDPIX, 6},
	0xC2: {instrREP, addrModeIMM, 3},
	0xC3: {instrCMP, addrModeSR, 4},
	0xC4: {instrCPY, addrModeDP, 3},
	0xC5: {instrCMP, addrModeDP, 3},
	0xC6: {instrDEC, addrModeDP, 5},
	0xC7: {instrCMP, addrModeDPIL, 6},
	0xC8: {instrINY, addrModeIMP, 2},
	0xC9: {instrCMP, addrModeIMM, 2},
	0xCA: {instrDEX, addrModeIMP, 2},
	0xCB: {instrWAI, addrModeIMP, 3},
	0xCC: {instrCPY, addrModeABS, 4},
	0xCD: {instrCMP, addrModeABS, 4},
	0xCE: {instrDEC, addrModeABS, 6},
	0xCF: {instrCMP, addrModeABSL, 5},

	0xD0: {instrBNE, addrModeREL, 2},
	0xD1: {instrCMP, addrModeDPIY, 5},
	0xD2: {instrCMP, addrModeDPI, 5},
	0xD3: {instrCMP, addrModeSRIY, 7},
	0xD4: {instrPEI, addrModeDPI, 6},
	0xD5: {instrCMP, addrModeDPX, 4},
	0xD6: {instrDEC, addrModeDPX, 6},
	0xD7: {instrCMP, addrModeDPILY, 6},
	0xD8: {instrCLD, addrModeIMP, 2},
	0xD9: {instrCMP, addrModeABSY, 4},
	0xDA: {instrPHX, addrModeIMP, 3},
	0xDB: {instrSTP, addrModeIMP, 3},
	0xDC: {instrJML, addrModeABSIL, 6},
	0xDD: {instrCMP, addrModeABSX, 4},
	0xDE: {instrDEC, addrModeABSX, 7},
	0xDF: {instrCMP, addrModeABSLX, 5},

	0xE0: {instrCPX, addrModeIMM, 2},
	0xE1: {instrSBC, addrModeDPIX, 6},
	0xE2: {instrSEP, addrModeIMM, 3},
	0xE3: {instrSBC, addrModeSR, 4},
	0xE4: {instrCPX, addrModeDP, 3},
	0xE5: {instrSBC, addrModeDP, 3},
	0xE6: {instrINC, addrModeDP, 5},
	0xE7: {instrSBC, addrModeDPIL, 6},
	0xE8: {instrINX, addrModeIMP, 2},
	0xE9: {instrSBC, addrModeIMM, 2},
	0xEA: {instrNOP, addrModeIMP, 2},
	0xEB: {instrXBA, addrModeIMP, 3},
	0xEC: {instrCPX, addrModeABS, 4},
	0xED: {instrSBC, addrModeABS, 4},
	0xEE: {instrINC, addrModeABS, 6},
	0xEF: {instrSBC, addrModeABSL, 5},

	0xF0: {instrBEQ, addrModeREL, 2},
	0xF1: {instrSBC, addrModeDPIY, 5},
	0xF2: {instrSBC, addrModeDPI, 5},
	0xF3: {instrSBC, addrModeSRIY, 7},
	0xF4: {instrPEA, addrModeABS, 5},
	0xF5: {instrSBC, addrModeDPX, 4},
	0xF6: {instrINC, addrModeDPX, 6},
	0xF7: {instrSBC, addrModeDPILY, 6},
	0xF8: {instrSED, addrModeIMP, 2},
	0xF9: {instrSBC, addrModeABSY, 4},
	0xFA: {instrPLX, addrModeIMP, 4},
	0xFB: {instrXCE, addrModeIMP, 2},
	0xFC: {instrJSR, addrModeABSIX, 8},
	0xFD: {instrSBC, addrModeABSX, 4},
	0xFE: {instrINC, addrModeABSX, 7},
	0xFF: {instrSBC, addrModeABSLX, 5},
}
