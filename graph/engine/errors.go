package engine

import (
	"fmt"

	"github.com/krotik/chronograph/graph/util"
	"github.com/krotik/chronograph/identity"
)

/*
errNotFoundUid builds a NotFound GraphError naming the missing uid.
*/
func errNotFoundUid(kind string, uid identity.Uid) error {
	return &util.GraphError{
		Type:   util.ErrNotFound,
		Detail: fmt.Sprintf("%s %v has no active version", kind, uid),
	}
}

/*
errNotFoundLocator builds a NotFound GraphError naming the missing locator.
*/
func errNotFoundLocator(kind string, loc identity.Locator) error {
	return &util.GraphError{
		Type:   util.ErrNotFound,
		Detail: fmt.Sprintf("%s %v does not exist", kind, loc),
	}
}

/*
errInvalidArgument builds an InvalidArgument GraphError with detail.
*/
func errInvalidArgument(detail string) error {
	return &util.GraphError{Type: util.ErrInvalidArgument, Detail: detail}
}
