package console

// Method identifies a console method.
type Method int

// The methods of a host console. Every one of them is wrapped by Wrap.
const (
	MethodLog Method = iota
	MethodInfo
	MethodWarn
	MethodError
	MethodDebug
	MethodTrace
	MethodGroup
	MethodGroupCollapsed
	MethodGroupEnd
	MethodTable
	MethodDir
	MethodDirXML
	MethodAssert
	MethodClear
	MethodCount
	MethodCountReset
	MethodTime
	MethodTimeLog
	MethodTimeEnd

	methodCount
)

var methodNames = [methodCount]string{
	MethodLog:            "log",
	MethodInfo:           "info",
	MethodWarn:           "warn",
	MethodError:          "error",
	MethodDebug:          "debug",
	MethodTrace:          "trace",
	MethodGroup:          "group",
	MethodGroupCollapsed: "groupCollapsed",
	MethodGroupEnd:       "groupEnd",
	MethodTable:          "table",
	MethodDir:            "dir",
	MethodDirXML:         "dirxml",
	MethodAssert:         "assert",
	MethodClear:          "clear",
	MethodCount:          "count",
	MethodCountReset:     "countReset",
	MethodTime:           "time",
	MethodTimeLog:        "timeLog",
	MethodTimeEnd:        "timeEnd",
}

// String returns the method name as the host console spells it.
func (m Method) String() string {
	if m < 0 || m >= methodCount {
		return "unknown"
	}
	return methodNames[m]
}

// Methods returns every known method in declaration order.
func Methods() []Method {
	methods := make([]Method, 0, methodCount)
	for m := Method(0); m < methodCount; m++ {
		methods = append(methods, m)
	}
	return methods
}

// ParseMethod looks a method up by name.
func ParseMethod(name string) (Method, bool) {
	for m, n := range methodNames {
		if n == name {
			return Method(m), true
		}
	}
	return 0, false
}
