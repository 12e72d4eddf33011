package majority

import (
	"io"
)

type Source interface {
	io.Closer

	Sequence(key string) ([][]byte, error)
	Len(key string) (int64, error)
	Address() string
}
