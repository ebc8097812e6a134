package command

// Opcodes assigned by the AV/C general and CCM specifications.
const (
	OpcodeVendorDependent        uint8 = 0x00
	OpcodePlugInfo               uint8 = 0x02
	OpcodeOutputPlugSignalFormat uint8 = 0x18
	OpcodeInputPlugSignalFormat  uint8 = 0x19
	OpcodeSignalSource           uint8 = 0x1a
	OpcodeUnitInfo               uint8 = 0x30
	OpcodeSubunitInfo            uint8 = 0x31
)
