package mockcontroller

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetScoreboard(ctx context.Context) (string, error) {
	args := c.Called(ctx)
	return args.String(0), args.Error(1)
}
