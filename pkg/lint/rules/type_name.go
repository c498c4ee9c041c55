package rules

import (
	"regexp"
	"strings"

	"github.com/leapstack-labs/stylecheck/pkg/lint"
	"github.com/leapstack-labs/stylecheck/pkg/source"
	"github.com/leapstack-labs/stylecheck/pkg/token"
)

// TypeName checks the names of declared types.
var TypeName = Def{
	ID:          "type_name",
	Name:        "Type Name Rule",
	Description: "Type name should only contain alphanumeric characters, start with an uppercase character and between 3 and 40 characters in length.",
	Params:      thresholds(40, 60),
	Check:       checkTypeName,

	NonTriggeringExamples: []string{
		"struct MyStruct {}\n",
		"class MyClass {}\n",
		"enum MyEnum {}\n",
		"protocol MyProtocol {}\n",
		"typealias Foo = Void\n",
		"class Foo { class func make() {} }\n",
	},
	TriggeringExamples: []string{
		"struct myStruct {}\n",
		"struct _MyStruct {}\n",
		"struct My_Struct {}\n",
		"struct AB {}\n",
		"struct " + strings.Repeat("A", 41) + " {}\n",
		"typealias foo = Void\n",
	},
}

var typeDeclPattern = regexp.MustCompile(`\b(?:class|struct|enum|protocol|typealias)[ \t]+([^\s:<{=(,;]+)`)

func checkTypeName(file *source.File, params []lint.Parameter) []finding {
	var out []finding
	for _, m := range file.MatchPattern(typeDeclPattern,
		token.KindKeyword, token.KindIdentifier, token.KindTypeIdentifier) {
		text := file.Contents[m.Offset:m.End()]
		sub := typeDeclPattern.FindStringSubmatchIndex(text)
		if sub == nil {
			continue
		}
		name := strings.Trim(text[sub[2]:sub[3]], "`")
		if token.IsKeyword(name) {
			continue // class func, class var
		}
		out = append(out, checkName("Type", name, m.Offset+sub[2], true, params)...)
	}
	return out
}
