package chart

import (
	"fmt"

	pg_query "github.com/pganalyze/pg_query_go/v6"
)

// checkQuery 对待保存的图表 SQL 做保存期静态检查
// 仅用于产生告警，执行阶段仍原样运行存储的查询
func checkQuery(sqlQuery string) error {
	result, err := pg_query.Parse(sqlQuery)
	if err != nil {
		return fmt.Errorf("query does not parse: %w", err)
	}
	if len(result.Stmts) == 0 {
		return fmt.Errorf("empty query")
	}
	if len(result.Stmts) > 1 {
		return fmt.Errorf("multiple statements")
	}
	if result.Stmts[0].Stmt.GetSelectStmt() == nil {
		return fmt.Errorf("not a SELECT statement")
	}
	return nil
}
