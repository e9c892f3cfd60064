package catalog

import "cinedex/models"

var catalogEntries = []models.CatalogEntry{
	{
		ID:       1,
		Title:    "Naruto",
		AltTitle: "ナルト",
		Year:     2002,
		Status:   "Finished Airing",
		Genres:   []string{"Action", "Adventure", "Fantasy"},
		Studios:  []string{"Pierrot"},
		Synopsis: "A young ninja seeks recognition from his village and dreams of becoming Hokage.",
	},
	{
		ID:       2,
		Title:    "One Piece",
		AltTitle: "ワンピース",
		Year:     1999,
		Status:   "Currently Airing",
		Genres:   []string{"Action", "Adventure", "Fantasy"},
		Studios:  []string{"Toei Animation"},
		Synopsis: "Monkey D. Luffy and his pirate crew search for the legendary One Piece treasure.",
	},
	{
		ID:       3,
		Title:    "Fullmetal Alchemist: Brotherhood",
		AltTitle: "鋼の錬金術師",
		Year:     2009,
		Status:   "Finished Airing",
		Genres:   []string{"Action", "Drama", "Fantasy"},
		Studios:  []string{"Bones"},
		Synopsis: "Two brothers pay the price of forbidden alchemy and hunt the Philosopher's Stone.",
	},
	{
		ID:       4,
		Title:    "Attack on Titan",
		AltTitle: "進撃の巨人",
		Year:     2013,
		Status:   "Finished Airing",
		Genres:   []string{"Action", "Drama"},
		Studios:  []string{"Wit Studio", "MAPPA"},
		Synopsis: "Humanity fights for survival behind walls besieged by man-eating titans.",
	},
	{
		ID:       5,
		Title:    "Demon Slayer: Kimetsu no Yaiba",
		AltTitle: "鬼滅の刃",
		Year:     2019,
		Status:   "Currently Airing",
		Genres:   []string{"Action", "Supernatural"},
		Studios:  []string{"ufotable"},
		Synopsis: "Tanjiro joins the Demon Slayer Corps to cure his sister and avenge his family.",
	},
	{
		ID:       6,
		Title:    "Spirited Away",
		AltTitle: "千と千尋の神隠し",
		Year:     2001,
		Status:   "Finished Airing",
		Genres:   []string{"Adventure", "Fantasy"},
		Studios:  []string{"Studio Ghibli"},
		Synopsis: "A girl must work in a bathhouse for spirits to free her parents from a curse.",
	},
	{
		ID:       7,
		Title:    "Cowboy Bebop",
		AltTitle: "カウボーイビバップ",
		Year:     1998,
		Status:   "Finished Airing",
		Genres:   []string{"Action", "Sci-Fi"},
		Studios:  []string{"Sunrise"},
		Synopsis: "Bounty hunters drift through the solar system chasing marks and their pasts.",
	},
	{
		ID:       8,
		Title:    "Jujutsu Kaisen",
		AltTitle: "呪術廻戦",
		Year:     2020,
		Status:   "Currently Airing",
		Genres:   []string{"Action", "Supernatural"},
		Studios:  []string{"MAPPA"},
		Synopsis: "A student swallows a cursed object and enrolls in a school of jujutsu sorcerers.",
	},
}
