package parser

// KeywordInfo describes one statement keyword: its Devanagari spelling,
// the English name shown in completion details, hover documentation and
// an optional completion snippet in LSP snippet syntax.
type KeywordInfo struct {
	Name    string
	English string
	Doc     string
	Snippet string
}

// BuiltinInfo describes one builtin function.
type BuiltinInfo struct {
	Name    string
	English string
	Doc     string
	Params  []string
	Returns string
}

// WordInfo describes a named constant or logical operator word.
type WordInfo struct {
	Name string
	Doc  string
}

// Keywords lists the statement keywords in the order completion
// presents them.
var Keywords = []KeywordInfo{
	{
		Name:    "यदि",
		English: "if",
		Doc:     "Conditional branch. Body must be indented.",
		Snippet: "यदि ${1:condition}:\n\t${2:body}",
	},
	{
		Name:    "अथवा_यदि",
		English: "elif",
		Doc:     "Else-if branch. Must follow a यदि or another अथवा_यदि block.",
		Snippet: "अथवा_यदि ${1:condition}:\n\t${2:body}",
	},
	{
		Name:    "अन्यथा",
		English: "else",
		Doc:     "Else branch. Must follow a यदि or अथवा_यदि block.",
		Snippet: "अन्यथा:\n\t${1:body}",
	},
	{
		Name:    "यावत्",
		English: "while",
		Doc:     "While loop. Body must be indented.",
		Snippet: "यावत् ${1:condition}:\n\t${2:body}",
	},
	{
		Name:    "कार्यम्",
		English: "function",
		Doc:     "Function definition. Parameters in parentheses, body indented.",
		Snippet: "कार्यम् ${1:name}(${2:params}):\n\t${3:body}",
	},
	{
		Name:    "प्रतिददाति",
		English: "return",
		Doc:     "Return a value from a function.",
		Snippet: "प्रतिददाति ${1:value}",
	},
	{
		Name:    "विरम",
		English: "break",
		Doc:     "Break out of the current loop.",
	},
	{
		Name:    "अनुवर्तय",
		English: "continue",
		Doc:     "Skip to the next iteration of the current loop.",
	},
}

// Builtins lists the builtin functions in the order completion
// presents them.
var Builtins = []BuiltinInfo{
	{
		Name:    "मुद्रय",
		English: "print",
		Doc:     "Print a value followed by a newline.",
		Params:  []string{"value"},
		Returns: "none",
	},
	{
		Name:    "निर्गम",
		English: "exit",
		Doc:     "Exit the programme with the given status code.",
		Params:  []string{"code"},
		Returns: "none",
	},
	{
		Name:    "दीर्घता",
		English: "length",
		Doc:     "Return the length of a string (in characters) or list.",
		Params:  []string{"value"},
		Returns: "int",
	},
	{
		Name:    "योजय",
		English: "append",
		Doc:     "Append an element to a list (mutates the list).",
		Params:  []string{"list", "element"},
		Returns: "none",
	},
	{
		Name:    "उपपाठ",
		English: "substring / sublist",
		Doc:     "Return a substring (by character indices) or sublist. End is exclusive.",
		Params:  []string{"value", "start", "end"},
		Returns: "str|list",
	},
	{
		Name:    "अन्वेषय",
		English: "find",
		Doc:     "Find the character offset of needle in haystack (-1 if not found).",
		Params:  []string{"haystack", "needle"},
		Returns: "int",
	},
	{
		Name:    "वर्णाङ्क",
		English: "char_code",
		Doc:     "Return the Unicode code-point of the first character of a string.",
		Params:  []string{"string"},
		Returns: "int",
	},
	{
		Name:    "अंकवर्ण",
		English: "from_char_code",
		Doc:     "Return a one-character string from a Unicode code-point.",
		Params:  []string{"code_point"},
		Returns: "str",
	},
	{
		Name:    "पाठ्य",
		English: "to_string",
		Doc:     "Convert a value to its string representation.",
		Params:  []string{"value"},
		Returns: "str",
	},
	{
		Name:    "पूर्णाङ्क",
		English: "to_int",
		Doc:     "Convert a value to an integer.",
		Params:  []string{"value"},
		Returns: "int",
	},
	{
		Name:    "पूर्णाङ्क_पाठ_से",
		English: "parse_int",
		Doc:     "Parse an integer from a string (supports Devanagari digits).",
		Params:  []string{"string"},
		Returns: "int",
	},
	{
		Name:    "विभज",
		English: "split",
		Doc:     "Split a string by a delimiter, returning a list of strings.",
		Params:  []string{"string", "delimiter"},
		Returns: "list",
	},
	{
		Name:    "सञ्चिका_पठ",
		English: "read_file",
		Doc:     "Read the entire contents of a file as a string.",
		Params:  []string{"path"},
		Returns: "str",
	},
}

// Constants lists the boolean literal words.
var Constants = []WordInfo{
	{Name: "सत्यम्", Doc: "true  — Boolean true"},
	{Name: "असत्यम्", Doc: "false — Boolean false"},
}

// LogicalOps lists the word-spelled logical operators.
var LogicalOps = []WordInfo{
	{Name: "च", Doc: "and — Logical AND"},
	{Name: "वा", Doc: "or  — Logical OR"},
	{Name: "न", Doc: "not — Logical NOT (prefix)"},
}

var (
	keywordByName   = make(map[string]*KeywordInfo, len(Keywords))
	builtinByName   = make(map[string]*BuiltinInfo, len(Builtins))
	constantByName  = make(map[string]*WordInfo, len(Constants))
	logicalOpByName = make(map[string]*WordInfo, len(LogicalOps))
)

func init() {
	for i := range Keywords {
		keywordByName[Keywords[i].Name] = &Keywords[i]
	}
	for i := range Builtins {
		builtinByName[Builtins[i].Name] = &Builtins[i]
	}
	for i := range Constants {
		constantByName[Constants[i].Name] = &Constants[i]
	}
	for i := range LogicalOps {
		logicalOpByName[LogicalOps[i].Name] = &LogicalOps[i]
	}
}

// LookupKeyword returns the table entry for a keyword spelling, or nil.
func LookupKeyword(name string) *KeywordInfo {
	return keywordByName[name]
}

// LookupBuiltin returns the table entry for a builtin name, or nil.
func LookupBuiltin(name string) *BuiltinInfo {
	return builtinByName[name]
}

// LookupConstant returns the table entry for a constant word, or nil.
func LookupConstant(name string) *WordInfo {
	return constantByName[name]
}

// LookupLogicalOp returns the table entry for a logical operator word,
// or nil.
func LookupLogicalOp(name string) *WordInfo {
	return logicalOpByName[name]
}
