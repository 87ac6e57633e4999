package mocks

import "github.com/thakopian/DASHBOARD-BIM360-FORGE/dm"

//go:generate mockgen -destination=dm_mock.go -package=mocks . DataManagementClient

type DataManagementClient interface {
	dm.Client
}
