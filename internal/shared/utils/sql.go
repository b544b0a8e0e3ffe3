package utils

import "strings"

// JoinWithAnd nối các điều kiện WHERE bằng AND
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}
