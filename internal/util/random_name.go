package util

import (
	"fmt"
	"math/rand"
	"time"
)

var nicknames = []string{
	"Wild", "Deadeye", "Dusty", "Lucky", "Doc", "Snake-Eyes", "Maverick", "Tumbleweed", "Six-Gun", "Mustang",
	"Cactus", "Rowdy", "Crooked", "Smiling", "One-Card", "High-Stakes", "Whiskey", "Buckshot", "Ornery",
	"Rambling", "Thirsty", "Copper", "Silver-Tongue", "Ace-High", "Longshot",
}

var names = []string{
	"Bill", "Jane", "Pete", "Sal", "Hank", "Mabel", "Earl", "Clementine", "Jeb", "Dolly", "Amos", "Etta",
	"Rufus", "Belle", "Cole", "Pearl", "Silas", "Rosa", "Wyatt", "Hattie", "Gus", "Nellie", "Clay", "June",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a saloon-worthy name by combining a nickname with a first name
func GetRandomName() string {
	nicknamesIndex := random.Intn(len(nicknames))
	namesIndex := random.Intn(len(names))

	return fmt.Sprintf("%s %s", nicknames[nicknamesIndex], names[namesIndex])
}
