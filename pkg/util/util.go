package util

import (
	"io"

	"github.com/xuning888/godeque/logger"
)

func Close(closer io.Closer) {
	err := closer.Close()
	if err != nil {
		logger.ErrorF("close failed with error: %v", err)
	}
}
