package useragent

func deviceOf(kind string) []Field {
	return []Field{Plain(KeyVendor), Plain(KeyModel), Const(KeyType, kind)}
}

func vendorDevice(vendor, kind string) []Field {
	return []Field{Const(KeyVendor, vendor), Plain(KeyModel), Const(KeyType, kind)}
}

// deviceRules detects device type, vendor and model. Vendor specific families
// come first; the generic Android and Windows Phone fallbacks only decide the
// device type when no family matched.
var deviceRules = Table{
	{
		Patterns: rx(`\((ipad|playbook);[\w\s);-]+(rim|apple)`),
		Fields:   []Field{Plain(KeyModel), Plain(KeyVendor), Const(KeyType, DeviceTypeTablet)},
	},
	{
		Patterns: rx(
			`(hp).+(touchpad)`,
			`(kindle)/([\w.]+)`,
			`\s(nook)[\w\s]+build/(\w+)`,
			`(dell)\s(strea[kpr\s\d]*[\dko])`,
		),
		Fields: deviceOf(DeviceTypeTablet),
	},
	// iPod and iPhone
	{
		Patterns: rx(`\((ip[honed]+);.+(apple)`),
		Fields:   []Field{Plain(KeyModel), Plain(KeyVendor), Const(KeyType, DeviceTypeMobile)},
	},
	{
		Patterns: rx(
			`(blackberry)[\s-]?(\w+)`,
			`(blackberry|benq|sonyericsson|acer|asus|dell|huawei|meizu|motorola)[\s_-]?([\w-]+)?`,
			`(palm)-([\w-]+)?`,
			`(hp)\s([\w\s]+\w)`,
			`(asus)-?(\w+)`,
		),
		Fields: deviceOf(DeviceTypeMobile),
	},
	{
		Patterns: rx(`\((bb10);\s(\w+)`),
		Fields:   vendorDevice("BlackBerry", DeviceTypeMobile),
	},
	{
		Patterns: rx(`android.+((transfo[prime\s]{4,10}\s\w+|eeepc|slider\s\w+))`),
		Fields:   vendorDevice("Asus", DeviceTypeTablet),
	},
	{
		Patterns: rx(`(sony)\s(tablet\s[ps])`),
		Fields:   deviceOf(DeviceTypeTablet),
	},
	{
		Patterns: rx(`(nintendo)\s([wids3u]+)`),
		Fields:   deviceOf(DeviceTypeConsole),
	},
	{
		Patterns: rx(`((playstation)\s[3portablevi]+)`),
		Fields:   vendorDevice("Sony", DeviceTypeConsole),
	},
	{
		Patterns: rx(`(sprint\s(\w+))`),
		Fields: []Field{
			Lookup(KeyVendor, sprintVendor),
			Lookup(KeyModel, sprintModel),
			Const(KeyType, DeviceTypeMobile),
		},
	},
	{
		Patterns: rx(
			`(htc)[;_\s-]+([\w\s]+)\)`,
			`(htc)[;_\s-]+(\w+)?`,
			`(zte)-(\w+)?`,
			`(alcatel|geeksphone|huawei|lenovo|nexian|panasonic)[_\s-]?([\w-]+)?`,
		),
		Fields: []Field{Plain(KeyVendor), Replace(KeyModel, underscore, " "), Const(KeyType, DeviceTypeMobile)},
	},
	{
		Patterns: rx(
			`\s((milestone|droid(?:[2-4x]|\s(?:bionic|x2|pro|razr))?(?:\s4g)?))[\w\s]+build/`,
			`(mot)[\s-]?(\w+)?`,
		),
		Fields: vendorDevice("Motorola", DeviceTypeMobile),
	},
	{
		Patterns: rx(`android.+\s((mz60\d|xoom[\s2]{0,2}))\sbuild/`),
		Fields:   vendorDevice("Motorola", DeviceTypeTablet),
	},
	{
		Patterns: rx(`android.+((sch-i[89]0\d|shw-m380s|gt-p\d{4}|gt-n8000|sgh-t8[56]9))`),
		Fields:   vendorDevice("Samsung", DeviceTypeTablet),
	},
	{
		Patterns: rx(
			`((s[cgp]h-\w+|gt-\w+|galaxy\snexus))`,
			`(sam[sung]*)[\s-]*(\w+-?[\w-]*)?`,
			`sec-((sgh\w+))`,
		),
		Fields: vendorDevice("Samsung", DeviceTypeMobile),
	},
	{
		Patterns: rx(`(sie)-(\w+)?`),
		Fields:   vendorDevice("Siemens", DeviceTypeMobile),
	},
	{
		Patterns: rx(
			`(maemo|nokia).*(n900|lumia\s\d+)`,
			`(nokia)[\s_-]?([\w-]+)?`,
		),
		Fields: vendorDevice("Nokia", DeviceTypeMobile),
	},
	{
		Patterns: rx(`android\s3\.[\s\w;-]{10}((a\d{3}))`),
		Fields:   vendorDevice("Acer", DeviceTypeTablet),
	},
	{
		Patterns: rx(`android\s3\.[\s\w;-]{10}(lg?)-([06cv9]{3,4})`),
		Fields:   vendorDevice("LG", DeviceTypeTablet),
	},
	{
		Patterns: rx(
			`((nexus\s4))`,
			`(lg)[e;\s/-]+(\w+)?`,
		),
		Fields: vendorDevice("LG", DeviceTypeMobile),
	},
	// Firefox OS style tokens carry only the form factor
	{
		Patterns: rx(`(mobile|tablet);.+rv:.+gecko/`),
		Fields:   []Field{Transform(KeyType, lower), Plain(KeyVendor), Plain(KeyModel)},
	},
	{
		Patterns: rx(`(xbox(?:\s(?:one|series\s[xs]))?)`),
		Fields:   []Field{Plain(KeyModel), Const(KeyVendor, "Microsoft"), Const(KeyType, DeviceTypeConsole)},
	},
	{
		Patterns: rx(`windows\sphone`, `iemobile`),
		Fields:   []Field{Const(KeyType, DeviceTypeMobile)},
	},
	// Android phones say "Mobile" (Opera "Mobi"), Android tablets omit it
	{
		Patterns: rx(`android.+\bmobi(?:le)?\b`),
		Fields:   []Field{Const(KeyType, DeviceTypeMobile)},
	},
	{
		Patterns: rx(`\bandroid\b`),
		Fields:   []Field{Const(KeyType, DeviceTypeTablet)},
	},
}
