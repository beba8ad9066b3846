package pagecursor

import (
	"context"
	"sync"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newGORMMySQLMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "mysql", db.Debug(), mock, nil
}

func newGORMPostgresMock() (string, *gorm.DB, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return "", nil, nil, err
	}

	dialector := postgres.New(postgres.Config{
		Conn: mockDB,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return "", nil, nil, err
	}

	return "postgres", db.Debug(), mock, nil
}

var sqlMockFnList = []func() (string, *gorm.DB, sqlmock.Sqlmock, error){
	newGORMMySQLMock,
	newGORMPostgresMock,
}

// recordingFetcher returns the page number as payload and remembers every call.
type recordingFetcher struct {
	mu    sync.Mutex
	calls []int
	fail  map[int]error
}

func (f *recordingFetcher) FetchPage(_ context.Context, page int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, page)
	if err, ok := f.fail[page]; ok {
		return 0, err
	}

	return page, nil
}

func (f *recordingFetcher) callCount(page int) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, p := range f.calls {
		if p == page {
			n++
		}
	}

	return n
}

func pageOf[P any](c *PageCursor[P]) int {
	if c == nil {
		return 0
	}

	return c.Page
}
