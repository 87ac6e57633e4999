package mocks

import (
	"go.uber.org/mock/gomock"
)

func SetupDataManagementClient(t gomock.TestReporter) *MockDataManagementClient {
	ctrl := gomock.NewController(t)
	return NewMockDataManagementClient(ctrl)
}
