package column_test

import (
	"testing"

	"github.com/framekit/framekit/core/column"
)

func TestDef(t *testing.T) {
	tests := []struct {
		name string
		col  column.Column
		want string
	}{
		{
			"plain",
			column.New(column.String{}).Named("name"),
			`"name" VARCHAR`,
		},
		{
			"primary key",
			column.New(column.Int32{}, column.PrimaryKey()).Named("id"),
			`"id" INTEGER PRIMARY KEY`,
		},
		{
			"unique",
			column.New(column.String{}, column.Unique()).Named("email"),
			`"email" VARCHAR UNIQUE`,
		},
		{
			"not null",
			column.New(column.Float64{}, column.NotNull()).Named("amount"),
			`"amount" DOUBLE NOT NULL`,
		},
		{
			"primary key and unique",
			column.New(column.Int64{}, column.PrimaryKey(), column.Unique()).Named("ref"),
			`"ref" BIGINT PRIMARY KEY UNIQUE`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.col.Def(); got != tt.want {
				t.Errorf("Def() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNamedDoesNotMutate(t *testing.T) {
	base := column.New(column.Int32{})
	bound := base.Named("id")

	if base.Name() != "" {
		t.Errorf("base name = %q, want empty", base.Name())
	}
	if bound.Name() != "id" {
		t.Errorf("bound name = %q, want id", bound.Name())
	}
}

func TestCastExpr(t *testing.T) {
	c := column.New(column.Int8{}).Named("age")

	strict := c.CastExpr(true)
	if strict != `CAST("age" AS TINYINT) AS "age"` {
		t.Errorf("strict CastExpr = %q", strict)
	}

	lenient := c.CastExpr(false)
	if lenient != `TRY_CAST("age" AS TINYINT) AS "age"` {
		t.Errorf("lenient CastExpr = %q", lenient)
	}
}
