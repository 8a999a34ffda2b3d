package util

import "strings"

// AccountRoot ledger flags, as found in account_info Flags.
const (
	LsfPasswordSpent  uint32 = 0x00010000
	LsfRequireDestTag uint32 = 0x00020000
	LsfRequireAuth    uint32 = 0x00040000
	LsfDisallowXRP    uint32 = 0x00080000
	LsfDisableMaster  uint32 = 0x00100000
	LsfNoFreeze       uint32 = 0x00200000
	LsfGlobalFreeze   uint32 = 0x00400000
	LsfDefaultRipple  uint32 = 0x00800000
	LsfDepositAuth    uint32 = 0x01000000
)

// AccountSet SetFlag / ClearFlag values.
const (
	AsfRequireDest   uint32 = 1
	AsfRequireAuth   uint32 = 2
	AsfDisallowXRP   uint32 = 3
	AsfDisableMaster uint32 = 4
	AsfAccountTxnID  uint32 = 5
	AsfNoFreeze      uint32 = 6
	AsfGlobalFreeze  uint32 = 7
	AsfDefaultRipple uint32 = 8
	AsfDepositAuth   uint32 = 9
)

func RequireDestinationTag(flags uint32) bool {
	return flags&LsfRequireDestTag != 0
}

func MasterKeyDisabled(flags uint32) bool {
	return flags&LsfDisableMaster != 0
}

var flagNames = []struct {
	flag uint32
	name string
}{
	{LsfPasswordSpent, "PasswordSpent"},
	{LsfRequireDestTag, "RequireDestTag"},
	{LsfRequireAuth, "RequireAuth"},
	{LsfDisallowXRP, "DisallowXRP"},
	{LsfDisableMaster, "DisableMaster"},
	{LsfNoFreeze, "NoFreeze"},
	{LsfGlobalFreeze, "GlobalFreeze"},
	{LsfDefaultRipple, "DefaultRipple"},
	{LsfDepositAuth, "DepositAuth"},
}

// FormatAccountFlags lists the names of the flags set, separated by
// commas.  No flags formats as "-".
func FormatAccountFlags(flags uint32) string {
	var names []string
	for _, f := range flagNames {
		if flags&f.flag != 0 {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ",")
}
