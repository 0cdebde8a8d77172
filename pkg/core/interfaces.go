package core

// Logger interface for render logging. Satisfied by *log.Logger.
type Logger interface {
	Printf(format string, args ...interface{})
}

// NoSpecular is the sentinel shininess exponent marking a surface with no
// specular highlight.
const NoSpecular = -1
