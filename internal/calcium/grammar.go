// Package calcium: production set. Every production here mirrors one
// _derive method of the original Calcium grammar: try/optional maps to
// front.Opt, begin/end-oneof maps to front.Alt, while-True/repeat maps to
// front.Rep, and a straight-line run of _process_paths calls maps to
// front.Seq. Expression and BlockStatement are left as opaque terminal
// kinds (§ Non-goals): this grammar describes top-level structure, not
// executable statement or expression syntax.
package calcium

import "github.com/calcium-lang/front/pkg/front"

// StartProduction is the production a Parser should start from to parse a
// whole compilation unit, mirroring CalciumParser._start in the original.
const StartProduction = "CompilationUnit"

// Grammar builds the full Calcium production set.
func Grammar() (*front.Grammar, error) {
	t := front.Term
	seq := front.Seq
	alt := front.Alt
	opt := front.Opt
	rep := front.Rep
	prod := front.Prod

	return front.NewGrammar(
		// Packages

		front.Production{
			ID: "CompilationUnit",
			Body: seq(
				opt(prod("PackageDeclaration")),
				opt(prod("ImportDeclarations")),
				prod("TopLevelTypeDeclaration"),
			),
		},
		front.Production{
			ID:   "PackageDeclaration",
			Body: seq(t(KindPackage), prod("PackageName"), opt(t(KindSemicolon))),
		},
		front.Production{
			ID:   "ImportDeclarations",
			Body: seq(prod("ImportDeclaration"), rep(prod("ImportDeclaration"))),
		},
		front.Production{
			ID: "TopLevelTypeDeclaration",
			Body: seq(
				opt(prod("DeclarationEncapsulation")),
				prod("TypeDeclaration"),
			),
		},
		front.Production{
			ID: "ImportDeclaration",
			Body: seq(
				t(KindImport),
				prod("ImportNames"),
				opt(prod("FromName")),
				opt(t(KindSemicolon)),
			),
		},
		front.Production{
			ID:   "DeclarationEncapsulation",
			Body: alt(t(KindPublic), t(KindProtected), t(KindPrivate)),
		},
		front.Production{
			ID: "TypeDeclaration",
			Body: alt(
				prod("TypedefDeclaration"),
				prod("EnumDeclaration"),
				prod("UnionDeclaration"),
				prod("StructDeclaration"),
			),
		},
		front.Production{
			ID:   "ImportNames",
			Body: seq(prod("ImportName"), rep(seq(t(KindComma), prod("ImportName")))),
		},
		front.Production{
			ID:   "FromName",
			Body: seq(t(KindFrom), prod("PackageOrTypeName")),
		},

		// Names

		front.Production{
			ID: "PackageName",
			Body: seq(
				t(KindIdentifier),
				rep(seq(t(KindFullStop), t(KindIdentifier))),
				opt(prod("Version")),
			),
		},
		front.Production{
			ID: "ImportName",
			Body: seq(
				t(KindIdentifier),
				opt(prod("Version")),
				opt(seq(t(KindAs), t(KindIdentifier))),
			),
		},
		front.Production{
			ID: "PackageOrTypeName",
			Body: seq(
				t(KindIdentifier),
				opt(prod("Version")),
				rep(seq(t(KindFullStop), t(KindIdentifier), opt(prod("Version")))),
			),
		},

		// Typedefs, Enums, Unions and Structs

		front.Production{
			ID: "TypedefDeclaration",
			Body: seq(
				t(KindTypedef),
				t(KindIdentifier),
				opt(prod("Version")),
				prod("BaseType"),
				opt(prod("TypedefBody")),
			),
		},
		front.Production{
			ID: "EnumDeclaration",
			Body: seq(
				opt(prod("EnumLayout")),
				t(KindEnum),
				t(KindIdentifier),
				opt(prod("Version")),
				opt(prod("BaseType")),
				prod("EnumBody"),
			),
		},
		front.Production{
			ID: "UnionDeclaration",
			Body: seq(
				t(KindUnion),
				t(KindIdentifier),
				opt(prod("Version")),
				prod("UnionBody"),
			),
		},
		front.Production{
			ID: "StructDeclaration",
			Body: seq(
				opt(prod("DeclarationExtensibility")),
				opt(prod("StructSeal")),
				opt(prod("StructLayout")),
				t(KindStruct),
				t(KindIdentifier),
				opt(prod("Version")),
				opt(prod("BaseType")),
				prod("StructBody"),
			),
		},
		front.Production{
			ID:   "Version",
			Body: seq(t(KindAt), t(KindInteger), t(KindFullStop), t(KindInteger)),
		},
		front.Production{
			ID:   "BaseType",
			Body: seq(t(KindColon), prod("Type")),
		},
		front.Production{
			ID: "TypedefBody",
			Body: alt(
				seq(t(KindLeftCurlyBracket), prod("BodyDeclarations"), t(KindRightCurlyBracket)),
				t(KindSemicolon),
			),
		},
		front.Production{
			ID:   "EnumLayout",
			Body: alt(t(KindStrict), seq(t(KindUnsafe), t(KindC))),
		},
		front.Production{
			ID: "EnumBody",
			Body: seq(
				t(KindLeftCurlyBracket),
				prod("EnumConstants"),
				opt(seq(t(KindSemicolon), prod("BodyDeclarations"))),
				t(KindRightCurlyBracket),
			),
		},
		front.Production{
			ID: "UnionBody",
			Body: seq(
				t(KindLeftCurlyBracket),
				prod("UnionTypes"),
				opt(seq(t(KindSemicolon), prod("BodyDeclarations"))),
				t(KindRightCurlyBracket),
			),
		},
		front.Production{
			ID:   "DeclarationExtensibility",
			Body: alt(t(KindFinal), t(KindAbstract)),
		},
		front.Production{
			ID: "StructSeal",
			Body: seq(
				t(KindSealed),
				opt(seq(t(KindLeftParenthesis), prod("TypeNames"), t(KindRightParenthesis))),
			),
		},
		front.Production{
			ID:   "StructLayout",
			Body: alt(t(KindStrict), t(KindC), t(KindPacked)),
		},
		front.Production{
			ID: "StructBody",
			Body: seq(
				t(KindLeftCurlyBracket),
				opt(prod("BodyDeclarations")),
				t(KindRightCurlyBracket),
			),
		},
		front.Production{
			ID:   "BodyDeclarations",
			Body: seq(prod("BodyDeclaration"), rep(prod("BodyDeclaration"))),
		},
		front.Production{
			ID:   "EnumConstants",
			Body: seq(prod("EnumConstant"), rep(seq(t(KindComma), prod("EnumConstant")))),
		},
		front.Production{
			ID:   "UnionTypes",
			Body: seq(prod("TypeDeclaration"), rep(seq(t(KindComma), prod("TypeDeclaration")))),
		},
		front.Production{
			ID:   "TypeNames",
			Body: seq(prod("TypeName"), rep(seq(t(KindComma), prod("TypeName")))),
		},
		front.Production{
			ID: "BodyDeclaration",
			Body: alt(
				prod("StaticInitializer"),
				seq(
					opt(prod("DeclarationEncapsulation")),
					alt(prod("MemberDeclaration"), prod("TypeDeclaration")),
				),
			),
		},
		front.Production{
			ID: "EnumConstant",
			Body: seq(
				opt(t(KindFullStop)),
				t(KindIdentifier),
				opt(seq(alt(t(KindEquals), t(KindColon)), prod("VariableInitializer"))),
			),
		},
		front.Production{
			ID: "StaticInitializer",
			Body: seq(
				opt(prod("SymbolNaming")),
				t(KindStatic),
				opt(prod("Version")),
				opt(t(KindStringIdentifier)),
				prod("Block"),
			),
		},
		front.Production{
			ID: "MemberDeclaration",
			Body: seq(
				opt(prod("MemberStaticity")),
				alt(prod("FieldDeclaration"), prod("MethodDeclaration")),
			),
		},
		front.Production{
			ID:   "VariableInitializer",
			Body: alt(t(KindExpression), prod("ArrayInitializer"), prod("StructInitializer")),
		},
		front.Production{
			ID:   "SymbolNaming",
			Body: alt(t(KindStrict), t(KindPlain)),
		},
		front.Production{
			ID:   "MemberStaticity",
			Body: t(KindStatic),
		},
		front.Production{
			ID: "FieldDeclaration",
			Body: seq(
				prod("ValueMutability"),
				opt(prod("ValueVolatility")),
				opt(prod("SymbolNaming")),
				t(KindIdentifier),
				opt(t(KindStringIdentifier)),
				t(KindColon),
				prod("Type"),
				opt(seq(t(KindEquals), prod("VariableInitializer"))),
				t(KindSemicolon),
			),
		},
		front.Production{
			ID: "MethodDeclaration",
			Body: seq(
				opt(prod("DeclarationExtensibility")),
				opt(prod("MethodOverride")),
				opt(prod("FunctionStrictness")),
				opt(prod("FunctionPurity")),
				t(KindFunc),
				prod("MethodHeader"),
				prod("MethodBody"),
			),
		},
		front.Production{
			ID:   "MethodOverride",
			Body: t(KindOverride),
		},
		front.Production{
			ID: "MethodHeader",
			Body: seq(
				prod("MethodDeclarator"),
				opt(seq(t(KindHyphenGreaterThan), prod("Result"))),
			),
		},
		front.Production{
			ID:   "MethodBody",
			Body: alt(prod("Block"), t(KindSemicolon)),
		},
		front.Production{
			ID: "MethodDeclarator",
			Body: seq(
				opt(prod("SymbolNaming")),
				t(KindIdentifier),
				opt(prod("Version")),
				opt(t(KindStringIdentifier)),
				opt(seq(t(KindColon), prod("TypeName"))),
				t(KindLeftParenthesis),
				opt(prod("Parameters")),
				t(KindRightParenthesis),
			),
		},
		front.Production{
			ID: "Parameters",
			Body: alt(
				seq(
					prod("ThisParameter"),
					opt(seq(t(KindComma), prod("FixedParameters"))),
					opt(seq(t(KindComma), prod("VariableArityParameter"))),
				),
				seq(
					prod("FixedParameters"),
					opt(seq(t(KindComma), prod("VariableArityParameter"))),
				),
				prod("VariableArityParameter"),
			),
		},
		front.Production{
			ID:   "FixedParameters",
			Body: seq(prod("FixedParameter"), rep(seq(t(KindComma), prod("FixedParameter")))),
		},
		front.Production{
			ID: "VariableArityParameter",
			Body: seq(
				t(KindTripleFullStop),
				opt(prod("VariableArityParameterLayout")),
				t(KindIdentifier),
				opt(seq(t(KindColon), prod("Type"))),
			),
		},
		front.Production{
			ID: "FixedParameter",
			Body: seq(
				t(KindIdentifier),
				opt(seq(t(KindColon), prod("Type"))),
			),
		},

		// Types

		front.Production{
			ID: "Type",
			Body: alt(
				seq(
					alt(prod("PrimitiveType"), prod("TypeName"), prod("VoidPointerType")),
					opt(prod("PointerOrArraySuffix")),
				),
				prod("FunctionType"),
				seq(
					t(KindLeftParenthesis),
					prod("FunctionType"),
					t(KindRightParenthesis),
					alt(prod("PointerNullity"), prod("PointerOrArraySuffix")),
				),
			),
		},
		front.Production{
			ID: "PrimitiveType",
			Body: seq(
				opt(prod("TypeAtomicity")),
				alt(prod("NumericType"), t(KindBool), t(KindChar)),
			),
		},
		front.Production{
			ID: "PointerOrArraySuffix",
			Body: seq(
				alt(prod("PointerSuffix"), prod("ArrayDim")),
				opt(prod("PointerOrArraySuffix")),
			),
		},
		front.Production{
			ID: "TypeName",
			Body: seq(
				opt(alt(prod("TypeStrictness"), prod("TypeBareness"))),
				t(KindIdentifier),
				opt(prod("Version")),
				rep(seq(t(KindFullStop), t(KindIdentifier), opt(prod("Version")))),
				opt(seq(
					t(KindLeftParenthesis),
					opt(prod("ParameterTypes")),
					t(KindRightParenthesis),
				)),
			),
		},
		front.Production{
			ID: "VoidPointerType",
			Body: seq(
				t(KindUnsafe),
				t(KindVoid),
				opt(prod("ValueMutability")),
				opt(prod("ValueVolatility")),
				t(KindAmpersand),
				opt(prod("TypeAtomicity")),
				opt(prod("ReferenceAliasability")),
				opt(prod("PointerNullity")),
			),
		},
		front.Production{
			ID: "FunctionType",
			Body: seq(
				opt(prod("TypeAtomicity")),
				opt(prod("FunctionStrictness")),
				opt(prod("FunctionPurity")),
				t(KindFunc),
				t(KindLeftParenthesis),
				opt(prod("ParameterTypes")),
				t(KindRightParenthesis),
				t(KindHyphenGreaterThan),
				prod("Result"),
			),
		},
		front.Production{
			ID:   "PointerNullity",
			Body: seq(opt(t(KindLocal)), t(KindQuestion)),
		},
		front.Production{
			ID:   "TypeAtomicity",
			Body: t(KindAtomic),
		},
		front.Production{
			ID:   "NumericType",
			Body: alt(prod("IntegralType"), prod("FloatingPointType")),
		},
		front.Production{
			ID: "PointerSuffix",
			Body: seq(
				opt(prod("ValueMutability")),
				opt(prod("ValueVolatility")),
				t(KindAmpersand),
				opt(alt(prod("PointerWidth"), prod("TypeAtomicity"))),
				opt(prod("ReferenceAliasability")),
				opt(prod("PointerNullity")),
			),
		},
		front.Production{
			ID: "ArrayDim",
			Body: seq(
				t(KindLeftSquareBracket),
				alt(
					seq(opt(prod("TypeStrictness")), opt(t(KindExpression))),
					prod("TypeBareness"),
				),
				t(KindRightSquareBracket),
				opt(prod("PointerNullity")),
			),
		},
		front.Production{
			ID:   "TypeStrictness",
			Body: t(KindStrict),
		},
		front.Production{
			ID: "ParameterTypes",
			Body: alt(
				seq(
					prod("ThisParameter"),
					opt(seq(t(KindComma), prod("FixedParameterTypes"))),
					opt(seq(t(KindComma), prod("VariableArityParameterType"))),
				),
				seq(
					prod("FixedParameterTypes"),
					opt(seq(t(KindComma), prod("VariableArityParameterType"))),
				),
				prod("VariableArityParameterType"),
			),
		},
		front.Production{
			ID:   "TypeBareness",
			Body: seq(t(KindUnsafe), t(KindBare)),
		},
		front.Production{
			ID:   "FunctionStrictness",
			Body: t(KindStrict),
		},
		front.Production{
			ID: "FunctionPurity",
			Body: seq(
				opt(t(KindLocal)),
				alt(t(KindConst), t(KindPure)),
			),
		},
		front.Production{
			ID:   "Result",
			Body: alt(t(KindNoreturn), t(KindVoid), prod("Type")),
		},
		front.Production{
			ID: "IntegralType",
			Body: alt(
				t(KindUbyte), t(KindByte), t(KindUshort), t(KindShort), t(KindUint),
				t(KindInt),
				t(KindUlong), t(KindLong),
			),
		},
		front.Production{
			ID:   "FloatingPointType",
			Body: alt(t(KindFloat), t(KindDouble)),
		},
		front.Production{
			ID: "ValueMutability",
			Body: alt(
				seq(opt(t(KindUnsafe)), t(KindVar)),
				seq(opt(t(KindLocal)), t(KindConst)),
			),
		},
		front.Production{
			ID: "ValueVolatility",
			Body: alt(
				seq(opt(t(KindLocal)), t(KindVolatile)),
				seq(opt(t(KindUnsafe)), t(KindStable)),
			),
		},
		front.Production{
			ID: "PointerWidth",
			Body: alt(
				seq(
					opt(seq(opt(t(KindUnsafe)), t(KindUnused))),
					opt(prod("TypeStrictness")),
					t(KindWide),
				),
				prod("TypeBareness"),
			),
		},
		front.Production{
			ID: "ReferenceAliasability",
			Body: alt(
				seq(opt(t(KindLocal)), t(KindAliasable)),
				seq(opt(t(KindUnsafe)), t(KindRestrict)),
			),
		},
		front.Production{
			ID: "ThisParameter",
			Body: alt(
				seq(
					t(KindThis),
					opt(seq(
						t(KindColon),
						prod("TypeName"),
						opt(prod("ValueMutability")),
						opt(prod("ValueVolatility")),
						opt(seq(
							t(KindAmpersand),
							opt(prod("PointerWidth")),
							opt(prod("ReferenceAliasability")),
						)),
					)),
				),
				seq(
					t(KindThis),
					t(KindColon),
					prod("ValueMutability"),
					opt(prod("ValueVolatility")),
					opt(seq(
						t(KindAmpersand),
						opt(prod("PointerWidth")),
						opt(prod("ReferenceAliasability")),
					)),
				),
				seq(
					t(KindThis),
					t(KindColon),
					prod("ValueVolatility"),
					opt(seq(
						t(KindAmpersand),
						opt(prod("PointerWidth")),
						opt(prod("ReferenceAliasability")),
					)),
				),
				seq(
					t(KindThis),
					t(KindColon),
					t(KindAmpersand),
					opt(prod("PointerWidth")),
					opt(prod("ReferenceAliasability")),
				),
			),
		},
		front.Production{
			ID:   "FixedParameterTypes",
			Body: seq(prod("FixedParameterType"), rep(seq(t(KindComma), prod("FixedParameterType")))),
		},
		front.Production{
			ID: "VariableArityParameterType",
			Body: seq(
				t(KindTripleFullStop),
				opt(prod("VariableArityParameterLayout")),
				t(KindColon),
				prod("Type"),
			),
		},
		front.Production{
			ID:   "FixedParameterType",
			Body: seq(t(KindColon), prod("Type")),
		},
		front.Production{
			ID:   "VariableArityParameterLayout",
			Body: alt(t(KindStrict), seq(t(KindUnsafe), t(KindC))),
		},

		// Blocks and Statements

		front.Production{
			ID: "Block",
			Body: seq(
				t(KindLeftCurlyBracket),
				opt(prod("BlockStatements")),
				t(KindRightCurlyBracket),
			),
		},
		front.Production{
			ID:   "BlockStatements",
			Body: seq(t(KindBlockStatement), rep(t(KindBlockStatement))),
		},

		// Expressions: Array and Struct Initializers

		front.Production{
			ID: "ArrayInitializer",
			Body: seq(
				t(KindLeftSquareBracket),
				opt(prod("VariableInitializers")),
				t(KindRightSquareBracket),
				opt(seq(t(KindColon), prod("Type"))),
			),
		},
		front.Production{
			ID: "StructInitializer",
			Body: seq(
				t(KindLeftCurlyBracket),
				opt(prod("FieldInitializers")),
				t(KindRightCurlyBracket),
				opt(seq(t(KindColon), prod("TypeName"))),
			),
		},
		front.Production{
			ID:   "VariableInitializers",
			Body: seq(prod("VariableInitializer"), rep(seq(t(KindComma), prod("VariableInitializer")))),
		},
		front.Production{
			ID:   "FieldInitializers",
			Body: seq(prod("FieldInitializer"), rep(seq(t(KindComma), prod("FieldInitializer")))),
		},
		front.Production{
			ID: "FieldInitializer",
			Body: seq(
				opt(t(KindFullStop)),
				t(KindIdentifier),
				alt(t(KindEquals), t(KindColon)),
				prod("VariableInitializer"),
			),
		},
	)
}
