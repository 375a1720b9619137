package useragent

import "regexp"

var ower = regexp.MustCompile(`ower`)

var cpuRules = Table{
	{
		Patterns: rx(`(?:(amd|x(?:(?:86|64)[_-])?|wow|win)64)[;)]`),
		Fields:   []Field{Const(KeyArchitecture, ArchAMD64)},
	},
	{
		Patterns: rx(`((?:i[346]|x)86)[;)]`),
		Fields:   []Field{Const(KeyArchitecture, ArchIA32)},
	},
	// PocketPC reports itself as PowerPC
	{
		Patterns: rx(`windows\s(ce|mobile);\sppc;`),
		Fields:   []Field{Const(KeyArchitecture, ArchARM)},
	},
	{
		Patterns: rx(`((?:ppc|powerpc)(?:64)?)(?:\smac|;|\))`),
		Fields:   []Field{ReplaceThen(KeyArchitecture, ower, "", lower)},
	},
	{
		Patterns: rx(`(sun4\w)[;)]`),
		Fields:   []Field{Const(KeyArchitecture, ArchSPARC)},
	},
	{
		Patterns: rx(
			`(ia64);`,
			`(68k)\)`,
			`(arm)v\d+;`,
			`((?:irix|mips|sparc)(?:64)?);`,
			`(pa-risc)`,
		),
		Fields: []Field{Transform(KeyArchitecture, lower)},
	},
}
