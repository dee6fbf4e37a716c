package repository

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"timetable_backend/internals/features/timetables/timetable/model"
)

// TIMETABLE_TEST_DSN mengaktifkan varian postgres, contoh:
// host=localhost user=postgres password=postgres dbname=timetable_test sslmode=disable
const dsnEnv = "TIMETABLE_TEST_DSN"

type repoCase struct {
	name string
	repo func(t *testing.T) Repository
}

func repoCases() []repoCase {
	return []repoCase{
		{"memory", func(t *testing.T) Repository { return NewMemoryRepository() }},
		{"postgres", openPostgres},
	}
}

func openPostgres(t *testing.T) Repository {
	t.Helper()
	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skipf("%s not set, skipping postgres repository test", dsnEnv)
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TimetableModel{}))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return NewGormRepository(db)
}

// department unik per test supaya baris dari run lain tidak ikut terhitung
func testDepartment(t *testing.T, repo Repository) string {
	t.Helper()
	dept := "Test Department " + uuid.NewString()
	t.Cleanup(func() {
		list, _, err := repo.List(context.Background(), Filter{Department: dept})
		if err != nil {
			return
		}
		for _, tt := range list {
			_ = repo.Delete(context.Background(), tt.ID)
		}
	})
	return dept
}

func TestUpsert_SingleRowPerKey(t *testing.T) {
	for _, tc := range repoCases() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			repo := tc.repo(t)
			dept := testDepartment(t, repo)
			key := model.Key{Year: "1st", Division: "a", Department: dept}
			admin := uuid.New()

			first, err := repo.Upsert(ctx, UpsertInput{
				Key:           key,
				TimetableData: datatypes.JSON(`{"Monday":["CS101"]}`),
				ConfigPatch:   map[string]any{"startTime": "08:00"},
				SavedBy:       admin,
				SavedByAdmin:  "Admin CE",
			})
			require.NoError(t, err)
			assert.Equal(t, "A", first.Division)

			cfg, err := model.DecodeObject(first.TimeConfig)
			require.NoError(t, err)
			assert.Equal(t, "08:00", cfg["startTime"])
			assert.Equal(t, "17:00", cfg["endTime"])

			other := uuid.New()
			second, err := repo.Upsert(ctx, UpsertInput{
				Key:           key,
				TimetableData: datatypes.JSON(`{"Tuesday":["CS102"]}`),
				ConfigPatch:   map[string]any{"endTime": "16:00"},
				SavedBy:       other,
				SavedByAdmin:  "Admin CE 2",
			})
			require.NoError(t, err)
			assert.Equal(t, first.ID, second.ID)
			assert.JSONEq(t, `{"Tuesday":["CS102"]}`, string(second.TimetableData))
			require.NotNil(t, second.SavedBy)
			assert.Equal(t, other, *second.SavedBy)
			assert.Equal(t, "Admin CE 2", second.SavedByAdmin)

			cfg, err = model.DecodeObject(second.TimeConfig)
			require.NoError(t, err)
			assert.Equal(t, "08:00", cfg["startTime"])
			assert.Equal(t, "16:00", cfg["endTime"])
			assert.Contains(t, cfg, "workingDays")

			_, total, err := repo.List(ctx, Filter{Department: dept})
			require.NoError(t, err)
			assert.EqualValues(t, 1, total)

			found, err := repo.FindByKey(ctx, model.Key{Year: "1st", Division: "A", Department: dept})
			require.NoError(t, err)
			assert.Equal(t, first.ID, found.ID)
		})
	}
}

func TestUpsert_ConcurrentWritersConverge(t *testing.T) {
	for _, tc := range repoCases() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			repo := tc.repo(t)
			dept := testDepartment(t, repo)
			key := model.Key{Year: "2nd", Division: "B", Department: dept}

			var wg sync.WaitGroup
			errs := make(chan error, 8)
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, err := repo.Upsert(ctx, UpsertInput{Key: key, TimetableData: datatypes.JSON(`{}`)})
					errs <- err
				}()
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				assert.NoError(t, err)
			}

			_, total, err := repo.List(ctx, Filter{Department: dept})
			require.NoError(t, err)
			assert.EqualValues(t, 1, total)
		})
	}
}

func TestListRecent_NewestFirst(t *testing.T) {
	for _, tc := range repoCases() {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			repo := tc.repo(t)
			dept := testDepartment(t, repo)

			for _, div := range []string{"A", "B", "C"} {
				_, err := repo.Upsert(ctx, UpsertInput{
					Key:           model.Key{Year: "1st", Division: div, Department: dept},
					TimetableData: datatypes.JSON(`{}`),
				})
				require.NoError(t, err)
			}

			recent, err := repo.ListRecent(ctx, dept, 2)
			require.NoError(t, err)
			require.Len(t, recent, 2)
			assert.Equal(t, "C", recent[0].Division)
			assert.Equal(t, "B", recent[1].Division)

			none, err := repo.ListRecent(ctx, "", 5)
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}
