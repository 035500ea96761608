// Package catalog serves the read-only book list. The canonical
// records below are upserted into Mongo at startup and never change
// while the process runs.
package catalog

import "novelnook/models"

var seedBooks = []models.Book{
	{
		BookID:          "1",
		Title:           "The Midnight Library",
		Author:          "Matt Haig",
		Price:           24.99,
		CoverImage:      "https://images.unsplash.com/photo-1541963463532-d68292c34b19?auto=format&fit=crop&w=1000&q=80",
		Description:     "Between life and death there is a library, and within that library, the shelves go on forever. Every book provides a chance to try another life you could have lived.",
		Category:        "Fiction",
		Featured:        true,
		PublicationDate: "2020-08-13",
		Pages:           304,
		Rating:          4.2,
	},
	{
		BookID:          "2",
		Title:           "Atomic Habits",
		Author:          "James Clear",
		Price:           21.99,
		CoverImage:      "https://images.unsplash.com/photo-1598618589929-b1433d05cfc6?auto=format&fit=crop&w=1000&q=80",
		Description:     "No matter your goals, Atomic Habits offers a proven framework for improving every day, breaking bad habits and mastering the tiny behaviors that lead to remarkable results.",
		Category:        "Self-Help",
		Featured:        true,
		PublicationDate: "2018-10-16",
		Pages:           320,
		Rating:          4.8,
	},
	{
		BookID:          "3",
		Title:           "Educated",
		Author:          "Tara Westover",
		Price:           22.99,
		CoverImage:      "https://images.unsplash.com/photo-1544947950-fa07a98d237f?auto=format&fit=crop&w=1000&q=80",
		Description:     "Born to survivalists in the mountains of Idaho, Tara Westover was seventeen the first time she set foot in a classroom.",
		Category:        "Memoir",
		PublicationDate: "2018-02-20",
		Pages:           334,
		Rating:          4.7,
	},
	{
		BookID:          "4",
		Title:           "The Silent Patient",
		Author:          "Alex Michaelides",
		Price:           19.99,
		CoverImage:      "https://images.unsplash.com/photo-1602306834394-6c8b7ea0ed9d?auto=format&fit=crop&w=1000&q=80",
		Description:     "Alicia Berenson shoots her husband five times in the face, and then never speaks another word.",
		Category:        "Thriller",
		Featured:        true,
		PublicationDate: "2019-02-05",
		Pages:           336,
		Rating:          4.3,
	},
	{
		BookID:          "5",
		Title:           "Where the Crawdads Sing",
		Author:          "Delia Owens",
		Price:           25.99,
		CoverImage:      "https://images.unsplash.com/photo-1603162950865-e7e15670b9e9?auto=format&fit=crop&w=1000&q=80",
		Description:     "For years, rumors of the 'Marsh Girl' have haunted Barkley Cove, a quiet town on the North Carolina coast.",
		Category:        "Fiction",
		PublicationDate: "2018-08-14",
		Pages:           384,
		Rating:          4.6,
	},
	{
		BookID:          "6",
		Title:           "The Psychology of Money",
		Author:          "Morgan Housel",
		Price:           23.99,
		CoverImage:      "https://images.unsplash.com/photo-1592496431122-2349e0fbc666?auto=format&fit=crop&w=1000&q=80",
		Description:     "Doing well with money isn't necessarily about what you know. It's about how you behave.",
		Category:        "Finance",
		Featured:        true,
		PublicationDate: "2020-09-08",
		Pages:           256,
		Rating:          4.7,
	},
	{
		BookID:          "7",
		Title:           "Project Hail Mary",
		Author:          "Andy Weir",
		Price:           26.99,
		CoverImage:      "https://images.unsplash.com/photo-1587876931567-564ce588bfbd?auto=format&fit=crop&w=1000&q=80",
		Description:     "Ryland Grace is the sole survivor on a desperate, last-chance mission, and if he fails, humanity and the Earth itself will perish.",
		Category:        "Sci-Fi",
		PublicationDate: "2021-05-04",
		Pages:           496,
		Rating:          4.6,
	},
	{
		BookID:          "8",
		Title:           "The Four Winds",
		Author:          "Kristin Hannah",
		Price:           28.99,
		CoverImage:      "https://images.unsplash.com/photo-1512820790803-83ca734da794?auto=format&fit=crop&w=1000&q=80",
		Description:     "Texas, 1934. Millions are out of work and a drought has broken the Great Plains.",
		Category:        "Historical Fiction",
		PublicationDate: "2021-02-02",
		Pages:           464,
		Rating:          4.5,
	},
}

var Categories = []string{
	"All",
	"Fiction",
	"Self-Help",
	"Memoir",
	"Thriller",
	"Finance",
	"Sci-Fi",
	"Historical Fiction",
}
