package sqlbuilder

import "github.com/Masterminds/squirrel"

// Диалекты табличного хранилища
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

// New возвращает squirrel builder с плейсхолдерами под диалект
func New(dialect string) squirrel.StatementBuilderType {
	if dialect == DialectPostgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}
