package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/inkwellbooks/inkwell/pkg/auth"
	"github.com/inkwellbooks/inkwell/pkg/config"
	"github.com/inkwellbooks/inkwell/pkg/database"
	"github.com/inkwellbooks/inkwell/pkg/migrations"
	"github.com/inkwellbooks/inkwell/pkg/models"
	"github.com/robinjoseph08/golib/logger"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

var authorNames = []string{
	"Pramoedya Ananta Toer", "Tere Liye", "Andrea Hirata", "Dee Lestari", "Eka Kurniawan",
	"Leila S. Chudori", "Ahmad Fuadi", "Habiburrahman El Shirazy", "Gola Gong", "Raditya Dika",
	"W.S. Rendra", "Chairil Anwar", "Sapardi Djoko Damono", "Maan Abdul", "Boy Candra",
	"Seno Gumira Ajidarma", "Ayu Utami", "N.H. Dini", "Mira W.", "Windhy Puspitadewi",
}

var publisherNames = []string{
	"Gramedia Pustaka Utama", "Bentang Pustaka", "Mizan", "Falcon Publishing", "GagasMedia",
	"Republika Penerbit", "Penerbit Erlangga", "Elex Media Komputindo", "Noura Books", "Pustaka Jaya",
}

var cities = []string{
	"Jakarta", "Bandung", "Yogyakarta", "Surabaya", "Semarang", "Medan", "Makassar",
}

var bookTitles = []string{
	"Laskar Pelangi", "Bumi Manusia", "Ayat-Ayat Cinta", "Negeri 5 Menara", "Perahu Kertas",
	"Cantik Itu Luka", "Orang-Orang Bloomington", "Sang Pemimpi", "Dilan 1990", "Milea",
	"Ronggeng Dukuh Paruk", "Gadis Pantai", "Laut Bercerita", "Pulang", "Daun yang Jatuh",
	"Rectoverso", "Supernova", "Madre", "Orang Miskin Dilarang Sekolah", "Filosofi Kopi",
}

func main() {
	ctx := context.Background()
	log := logger.New()

	cfg, err := config.New()
	if err != nil {
		log.Err(err).Fatal("config error")
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Err(err).Fatal("database error")
	}

	if _, err := migrations.BringUpToDate(ctx, db); err != nil {
		log.Err(err).Fatal("migrations error")
	}

	if err := seed(ctx, db); err != nil {
		log.Err(err).Fatal("seed error")
	}

	log.Info("seed complete")
}

func seed(ctx context.Context, db *bun.DB) error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	if err := seedAdminUser(ctx, db, now); err != nil {
		return err
	}

	publishers := make([]*models.Publisher, 0, len(publisherNames))
	for _, name := range publisherNames {
		year := 1950 + rng.Intn(70)
		city := cities[rng.Intn(len(cities))]
		publisher := &models.Publisher{
			Name:            name,
			City:            &city,
			EstablishedYear: &year,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if _, err := db.NewInsert().Model(publisher).Returning("*").Exec(ctx); err != nil {
			return err
		}
		publishers = append(publishers, publisher)
	}

	authors := make([]*models.Author, 0, len(authorNames))
	for _, name := range authorNames {
		birthDate := fmt.Sprintf("%d-%02d-%02d", 1920+rng.Intn(80), 1+rng.Intn(12), 1+rng.Intn(28))
		nationality := "Indonesia"
		biography := fmt.Sprintf("%s adalah seorang penulis ternama.", name)
		author := &models.Author{
			Name:        name,
			BirthDate:   &birthDate,
			Nationality: &nationality,
			Biography:   &biography,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if _, err := db.NewInsert().Model(author).Returning("*").Exec(ctx); err != nil {
			return err
		}
		authors = append(authors, author)
	}

	for i := 0; i < 100; i++ {
		author := authors[rng.Intn(len(authors))]
		publisher := publishers[rng.Intn(len(publishers))]

		title := fmt.Sprintf("Catatan Penerbitan %d", i+1)
		if i < len(bookTitles) {
			title = bookTitles[i]
		}
		isbn := randomISBN13(rng)
		year := 1980 + rng.Intn(45)
		pages := 100 + rng.Intn(700)
		synopsis := fmt.Sprintf("Sebuah karya dari %s yang diterbitkan oleh %s.", author.Name, publisher.Name)

		book := &models.Book{
			Title:         title,
			ISBN:          &isbn,
			PublishedYear: &year,
			Pages:         &pages,
			Synopsis:      &synopsis,
			AuthorID:      author.ID,
			PublisherID:   publisher.ID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if _, err := db.NewInsert().Model(book).Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}

func seedAdminUser(ctx context.Context, db *bun.DB, now time.Time) error {
	exists, err := db.NewSelect().
		Model((*models.User)(nil)).
		Where("email = ? COLLATE NOCASE", "admin@inkwell.test").
		Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), auth.BcryptCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         "admin",
		Email:        "admin@inkwell.test",
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err = db.NewInsert().Model(user).Exec(ctx)
	return err
}

// randomISBN13 builds a 13-digit string with a valid check digit.
func randomISBN13(rng *rand.Rand) string {
	var sb strings.Builder
	sb.WriteString("978")
	for i := 0; i < 9; i++ {
		sb.WriteByte(byte('0' + rng.Intn(10)))
	}
	digits := sb.String()

	sum := 0
	for i, r := range digits {
		d := int(r - '0')
		if i%2 == 1 {
			d *= 3
		}
		sum += d
	}
	check := (10 - sum%10) % 10

	return digits + string(byte('0'+check))
}
