package database

import (
	"encoding/json"
	"log/slog"

	"github.com/shuhuiluo/trivia-game/internal/models"

	"gorm.io/gorm"
)

type seedQuestion struct {
	Text         string
	Options      []string
	CorrectIndex int
}

type seedCategory struct {
	Name      string
	Questions []seedQuestion
}

var seedData = []seedCategory{
	{
		Name: "Science",
		Questions: []seedQuestion{
			{"What is the chemical symbol for gold?", []string{"Ag", "Au", "Fe", "Cu"}, 1},
			{"What planet is known as the Red Planet?", []string{"Venus", "Jupiter", "Mars", "Saturn"}, 2},
			{"What is the powerhouse of the cell?", []string{"Nucleus", "Ribosome", "Mitochondria", "Golgi apparatus"}, 2},
			{"What gas do plants absorb from the atmosphere?", []string{"Oxygen", "Nitrogen", "Carbon dioxide", "Hydrogen"}, 2},
			{"What is the speed of light in a vacuum (approx)?", []string{"300,000 km/s", "150,000 km/s", "1,000,000 km/s", "30,000 km/s"}, 0},
		},
	},
	{
		Name: "History",
		Questions: []seedQuestion{
			{"In what year did World War II end?", []string{"1943", "1944", "1945", "1946"}, 2},
			{"Who was the first President of the United States?", []string{"John Adams", "Thomas Jefferson", "George Washington", "Benjamin Franklin"}, 2},
			{"The Great Wall of China was primarily built to protect against whom?", []string{"Japanese", "Mongols", "Koreans", "Russians"}, 1},
			{"Which empire was ruled by Genghis Khan?", []string{"Ottoman Empire", "Roman Empire", "Mongol Empire", "Persian Empire"}, 2},
			{"In what year did the Titanic sink?", []string{"1905", "1912", "1918", "1920"}, 1},
		},
	},
	{
		Name: "Geography",
		Questions: []seedQuestion{
			{"What is the largest continent by area?", []string{"Africa", "North America", "Europe", "Asia"}, 3},
			{"Which country has the most natural lakes?", []string{"USA", "Canada", "Russia", "Brazil"}, 1},
			{"What is the longest river in the world?", []string{"Amazon", "Nile", "Yangtze", "Mississippi"}, 1},
			{"What is the smallest country in the world?", []string{"Monaco", "Vatican City", "San Marino", "Liechtenstein"}, 1},
			{"Mount Everest is located on the border of which two countries?", []string{"India and China", "Nepal and China", "Nepal and India", "China and Pakistan"}, 1},
		},
	},
	{
		Name: "Entertainment",
		Questions: []seedQuestion{
			{"Who directed the movie Inception?", []string{"Steven Spielberg", "Christopher Nolan", "Martin Scorsese", "James Cameron"}, 1},
			{"What is the highest-grossing film of all time (not adjusted for inflation)?", []string{"Avengers: Endgame", "Avatar", "Titanic", "Star Wars: The Force Awakens"}, 1},
			{"Which band released the album 'Abbey Road'?", []string{"The Rolling Stones", "The Beatles", "Led Zeppelin", "Pink Floyd"}, 1},
			{"In the TV show Breaking Bad, what is Walter White's alias?", []string{"Heisenberg", "The Professor", "Scarface", "The Chemist"}, 0},
			{"What year was the first Harry Potter book published?", []string{"1995", "1997", "1999", "2001"}, 1},
		},
	},
	{
		Name: "Technology",
		Questions: []seedQuestion{
			{"Who co-founded Apple Computer with Steve Jobs?", []string{"Bill Gates", "Steve Wozniak", "Paul Allen", "Larry Ellison"}, 1},
			{"What does HTTP stand for?", []string{"HyperText Transfer Protocol", "High Tech Transfer Protocol", "HyperText Transmission Process", "High Transfer Text Protocol"}, 0},
			{"In what year was the World Wide Web invented?", []string{"1985", "1989", "1993", "1995"}, 1},
			{"What programming language was created by Brendan Eich in 10 days?", []string{"Java", "Python", "JavaScript", "Ruby"}, 2},
			{"What does CPU stand for?", []string{"Central Processing Unit", "Computer Personal Unit", "Central Program Utility", "Core Processing Unit"}, 0},
		},
	},
}

// Seed inserts the built-in categories and questions. Categories that
// already exist are skipped, so running it on a populated database is a
// no-op for those rows.
func Seed(db *gorm.DB) error {
	for _, data := range seedData {
		var existing models.Category
		if err := db.Where("name = ?", data.Name).First(&existing).Error; err == nil {
			slog.Info("category already seeded, skipping", "category", data.Name)
			continue
		}

		category := models.Category{Name: data.Name}
		if err := db.Create(&category).Error; err != nil {
			return err
		}

		for _, q := range data.Questions {
			opts, err := json.Marshal(q.Options)
			if err != nil {
				return err
			}
			question := models.Question{
				CategoryID:   category.ID,
				Text:         q.Text,
				Options:      string(opts),
				CorrectIndex: q.CorrectIndex,
			}
			if err := db.Create(&question).Error; err != nil {
				return err
			}
		}

		slog.Info("seeded category", "category", data.Name, "questions", len(data.Questions))
	}
	return nil
}
