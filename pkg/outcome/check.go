package outcome

// Check identifies the predicate that produced an outcome. It feeds message
// templates and test assertions, never control flow.
type Check string

// Predicate identifiers shared by the guard and validate evaluators.
const (
	CheckNone             Check = ""
	CheckIfTrue           Check = "IfTrue"
	CheckIfFalse          Check = "IfFalse"
	CheckIfDefault        Check = "IfDefault"
	CheckIfNotDefault     Check = "IfNotDefault"
	CheckIfNil            Check = "IfNil"
	CheckIfNotNil         Check = "IfNotNil"
	CheckIfEqual          Check = "IfEqual"
	CheckIfNotEqual       Check = "IfNotEqual"
	CheckIfZero           Check = "IfZero"
	CheckIfNotZero        Check = "IfNotZero"
	CheckIfGreater        Check = "IfGreater"
	CheckIfGreaterOrEqual Check = "IfGreaterOrEqual"
	CheckIfEmpty          Check = "IfEmpty"
	CheckIfNotEmpty       Check = "IfNotEmpty"
	CheckIfParseToLong    Check = "IfParseToLong"
	CheckIfNotParseToLong Check = "IfNotParseToLong"
	CheckIfOlder          Check = "IfOlder"
	CheckIfOlderOrEqual   Check = "IfOlderOrEqual"
	CheckIfEmail          Check = "IfEmail"
	CheckIfNotEmail       Check = "IfNotEmail"
	CheckIfUUID           Check = "IfUUID"
	CheckIfNotUUID        Check = "IfNotUUID"
)

func (c Check) String() string { return string(c) }
