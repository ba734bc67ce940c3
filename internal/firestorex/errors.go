package firestorex

import (
	"fmt"

	"github.com/Zaugg-M/Cloud-ToDo/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapError translates a Firestore RPC error into one of the sentinel errors
// from internal/common. Failures that do not correspond to a sentinel are
// returned unchanged; callers should treat them as internal.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
	}

	return err
}
