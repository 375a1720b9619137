package useragent

func osNamed(name string) []Field {
	return []Field{Const(KeyName, name), Plain(KeyVersion)}
}

var osFields = []Field{Plain(KeyName), Plain(KeyVersion)}

var osRules = Table{
	// Windows based
	{
		Patterns: rx(
			`(windows)\snt\s6\.2;\s(arm)`,
			`(windows\sphone(?:\sos)*|windows\smobile|windows)[\s/]?([ntce\d.\s]+\w)`,
		),
		Fields: []Field{Plain(KeyName), Lookup(KeyVersion, windowsVersion)},
	},
	{
		Patterns: rx(
			`(win)([39n][nt\d.]*)`,
			`(win\s9x\s)([nt\d.]+)`,
		),
		Fields: []Field{Const(KeyName, "Windows"), Lookup(KeyVersion, windowsVersion)},
	},
	// Mobile and embedded
	{
		Patterns: rx(`\((bb)(10);`),
		Fields:   osNamed("BlackBerry"),
	},
	{
		Patterns: rx(
			`(blackberry)\w*/?([\w.]+)?`,
			`(tizen)/([\w.]+)`,
			`(android|webos|palm\s?os|qnx|bada|rim\stablet\sos|meego)[/\s-]?([\w.]+)?`,
		),
		Fields: osFields,
	},
	{
		Patterns: rx(
			`(symbian\s?os|symbos)[/\s-]?([\w.]+)?`,
			`(s60);`,
		),
		Fields: osNamed("Symbian"),
	},
	{
		Patterns: rx(`mozilla.+\(mobile;.+gecko.+firefox`),
		Fields:   osNamed("Firefox OS"),
	},
	// Consoles and GNU/Linux based
	{
		Patterns: rx(
			`(nintendo|playstation)\s([wids3portablevu]+)`,
			`(mint)[/\s(]?(\w+)?`,
			`(joli|[kxln]?ubuntu|debian|[open]*suse|gentoo|arch|slackware|fedora|mandriva|centos|pclinuxos|redhat|zenwalk)[/\s-]?([\w.-]+)?`,
			`(hurd|linux)\s?([\w.]+)?`,
			`(gnu)\s?([\w.]+)?`,
		),
		Fields: osFields,
	},
	{
		Patterns: rx(`(cros)\s\w+\s([\w.]+\w)`),
		Fields:   osNamed("Chromium OS"),
	},
	{
		Patterns: rx(`(sunos)\s?([\w.]+\d)?`),
		Fields:   osNamed("Solaris"),
	},
	// BSD based
	{
		Patterns: rx(`\s([frentopc-]{0,4}bsd|dragonfly)\s?([\w.]+)?`),
		Fields:   osFields,
	},
	{
		Patterns: rx(`(ip[honead]+)(?:.*os\s*(\w+)?\slike\smac|;\sopera)`),
		Fields:   []Field{Const(KeyName, "iOS"), Replace(KeyVersion, underscore, ".")},
	},
	{
		Patterns: rx(`(mac\sos\sx)\s?([\w\s.]+\w)?`),
		Fields:   []Field{Plain(KeyName), Replace(KeyVersion, underscore, ".")},
	},
	{
		Patterns: rx(
			`(haiku)\s(\w+)`,
			`(aix)\s(\d[\w.]*)?`,
			`(macintosh|plan\s9|minix|beos|os/2|amigaos|morphos|risc\sos)`,
			`(mac)_powerpc`,
			`(unix)\s?([\w.]+)?`,
		),
		Fields: osFields,
	},
}
