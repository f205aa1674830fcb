package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sort"
	"time"
)

func genID(prefix string) string {
	b := make([]byte, 4)
	rand.Read(b)
	return fmt.Sprintf("%s_%s", prefix, hex.EncodeToString(b))
}

func now() int64 {
	return time.Now().UnixMilli()
}

func sortNewest(teams []SavedTeam) {
	sort.SliceStable(teams, func(i, j int) bool {
		if teams[i].Timestamp != teams[j].Timestamp {
			return teams[i].Timestamp > teams[j].Timestamp
		}
		return teams[i].ID < teams[j].ID
	})
}
