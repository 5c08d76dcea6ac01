package libkitsu

import "github.com/philippgille/gokv"

const (
	// NameToAuthData maps username to its token pair (authentication).
	//
	// ["somebody" => "{access_token: ..., refresh_token: ..., ...}"]
	StoreBucketNameNameToAuthData = "name-to-auth-data"
)

type store struct {
	openStore func(bucketName string) (gokv.Store, error)
	store     gokv.Store
}

func (s *store) open(bucketName string) error {
	store, err := s.openStore(bucketName)
	s.store = store
	return err
}

func (s *store) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}

func (s *store) getAuthData(name string) (authData AuthData, found bool, err error) {
	err = s.open(StoreBucketNameNameToAuthData)
	if err != nil {
		return
	}
	defer s.Close()

	found, err = s.store.Get(name, &authData)
	return
}

func (s *store) setAuthData(name string, authData AuthData) (err error) {
	err = s.open(StoreBucketNameNameToAuthData)
	if err != nil {
		return
	}
	defer s.Close()

	return s.store.Set(name, authData)
}

func (s *store) deleteAuthData(name string) (err error) {
	err = s.open(StoreBucketNameNameToAuthData)
	if err != nil {
		return
	}
	defer s.Close()

	return s.store.Delete(name)
}
