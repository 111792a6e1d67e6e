package db_test

import (
	"context"
	"database/sql"

	"tokenrelay/internal/db"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Record struct {
	Key   string `gorm:"primaryKey"`
	Name  string
	Value decimal.Decimal `gorm:"type:numeric(78,0)"`
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Insert", func() {
		When("the key is free", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "records" \("key","name","value"\) VALUES \(\$1,\$2,\$3\)`).
					WithArgs("k1", "Alice", sqlmock.AnyArg()).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should insert the record", func() {
				err := testDB.Insert(ctx, &Record{Key: "k1", Name: "Alice", Value: decimal.NewFromInt(5)})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the key is taken", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "records"`).
					WillReturnError(&pgconn.PgError{Code: "23505"})
				mock.ExpectRollback()
			})

			It("should return ErrAlreadyExists", func() {
				err := testDB.Insert(ctx, &Record{Key: "k1", Name: "Alice"})
				Expect(err).To(Equal(db.ErrAlreadyExists))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the database fails", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`INSERT INTO "records"`).
					WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			})

			It("should wrap the error", func() {
				err := testDB.Insert(ctx, &Record{Key: "k1"})
				Expect(err).To(MatchError(ContainSubstring("insert to table")))
			})
		})
	})

	Describe("Upsert", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`INSERT INTO "records" .* ON CONFLICT \("key"\) DO UPDATE SET "name"="excluded"."name"`).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should update the given columns on conflict", func() {
			err := testDB.Upsert(ctx, &Record{Key: "k1", Name: "Bob"}, "name")
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("UpdateWhere", func() {
		When("a row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "records" SET "name"=\$1 WHERE "key" = \$2`).
					WithArgs("Bob", "k1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			})

			It("should update it", func() {
				err := testDB.UpdateWhere(ctx, &Record{}, map[string]any{"key": "k1"}, map[string]any{"name": "Bob"})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				mock.ExpectBegin()
				mock.ExpectExec(`UPDATE "records" SET "name"=\$1 WHERE "key" = \$2`).
					WithArgs("Bob", "ghost").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			})

			It("should return ErrNotFound", func() {
				err := testDB.UpdateWhere(ctx, &Record{}, map[string]any{"key": "ghost"}, map[string]any{"name": "Bob"})
				Expect(err).To(Equal(db.ErrNotFound))
			})
		})
	})

	Describe("GetOneBy", func() {
		When("a record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE name = \$1 ORDER BY "records"\."key" LIMIT \$2`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"key", "name", "value"}).
						AddRow("k1", "Alice", "7"))
			})

			It("should return the correct record", func() {
				var result Record
				err := testDB.GetOneBy(ctx, "name", "Alice", &result)
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Key).To(Equal("k1"))
				Expect(result.Value.String()).To(Equal("7"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("no record is found", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE name = \$1`).
					WithArgs("Ghost", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			})

			It("should return ErrNotFound", func() {
				var result Record
				err := testDB.GetOneBy(ctx, "name", "Ghost", &result)
				Expect(err).To(Equal(db.ErrNotFound))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("FindWhere", func() {
		When("records match", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records" WHERE "name" = \$1 ORDER BY key desc`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"key", "name", "value"}).
						AddRow("k2", "Alice", "2").
						AddRow("k1", "Alice", "1"))
			})

			It("should return them in order", func() {
				var results []Record
				err := testDB.FindWhere(ctx, map[string]any{"name": "Alice"}, "key desc", &results)
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(results[0].Key).To(Equal("k2"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT \* FROM "records"`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				var results []Record
				err := testDB.FindWhere(ctx, map[string]any{"name": "Alice"}, "", &results)
				Expect(err).To(MatchError(ContainSubstring("find records")))
			})
		})
	})

	Describe("SumWhere", func() {
		When("rows match", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT COALESCE\(SUM\(value\), 0\) FROM "records" WHERE "name" = \$1`).
					WithArgs("Alice").
					WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow("1000000000000000000000001"))
			})

			It("should return the exact sum", func() {
				sum, err := testDB.SumWhere(ctx, &Record{}, "value", map[string]any{"name": "Alice"})
				Expect(err).NotTo(HaveOccurred())
				Expect(sum.String()).To(Equal("1000000000000000000000001"))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the query fails", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT COALESCE`).
					WillReturnError(sql.ErrConnDone)
			})

			It("should return an error", func() {
				_, err := testDB.SumWhere(ctx, &Record{}, "value", map[string]any{"name": "Alice"})
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
