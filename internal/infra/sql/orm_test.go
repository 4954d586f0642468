package sql_test

import (
	"context"
	"errors"
	"time"

	"hubble-workspace/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

type ledgerEntry struct {
	ID       uint   `gorm:"primaryKey"`
	Resource string `gorm:"index"`
	Name     string
	Position int
}

var _ = ginkgo.Describe("ORM", func() {
	var (
		db  *sql.DB
		orm sql.ORM
		ctx context.Context
	)

	ginkgo.BeforeEach(func() {
		var err error
		db, err = sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		ginkgo.DeferCleanup(db.Close)

		orm = db
		ctx = context.Background()
		gomega.Expect(orm.AutoMigrate(&ledgerEntry{})).To(gomega.Succeed())
	})

	seed := func(names ...string) {
		for i, name := range names {
			entry := ledgerEntry{Resource: "plans", Name: name, Position: i}
			gomega.Expect(orm.WithContext(ctx).Create(&entry).Error()).To(gomega.Succeed())
		}
	}

	ginkgo.It("gives every memory database its own data", func() {
		seed("starter")

		other, err := sql.NewMemoryORM()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		defer other.Close()
		gomega.Expect(other.AutoMigrate(&ledgerEntry{})).To(gomega.Succeed())

		var count int64
		gomega.Expect(other.WithContext(ctx).Model(&ledgerEntry{}).Count(&count).Error()).To(gomega.Succeed())
		gomega.Expect(count).To(gomega.BeZero())
	})

	ginkgo.It("pages ordered rows", func() {
		seed("a", "b", "c", "d", "e")

		var page []ledgerEntry
		err := orm.WithContext(ctx).
			Where("resource = ?", "plans").
			Order("position").
			Offset(2).
			Limit(2).
			Find(&page).
			Error()
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(page).To(gomega.HaveLen(2))
		gomega.Expect(page[0].Name).To(gomega.Equal("c"))
		gomega.Expect(page[1].Name).To(gomega.Equal("d"))
	})

	ginkgo.It("maps missing rows to ErrRecordNotFound", func() {
		var entry ledgerEntry
		err := orm.WithContext(ctx).Where("name = ?", "missing").First(&entry).Error()
		gomega.Expect(errors.Is(err, sql.ErrRecordNotFound)).To(gomega.BeTrue())
	})

	ginkgo.It("maps key conflicts to ErrDuplicateKey", func() {
		gomega.Expect(orm.WithContext(ctx).Create(&ledgerEntry{ID: 7, Name: "first"}).Error()).To(gomega.Succeed())

		err := orm.WithContext(ctx).Create(&ledgerEntry{ID: 7, Name: "second"}).Error()
		gomega.Expect(errors.Is(err, sql.ErrDuplicateKey)).To(gomega.BeTrue())
	})

	ginkgo.It("saves changes to an existing row", func() {
		seed("starter")

		var entry ledgerEntry
		gomega.Expect(orm.WithContext(ctx).First(&entry).Error()).To(gomega.Succeed())
		entry.Name = "business"
		gomega.Expect(orm.WithContext(ctx).Save(&entry).Error()).To(gomega.Succeed())

		var reloaded ledgerEntry
		gomega.Expect(orm.WithContext(ctx).First(&reloaded, entry.ID).Error()).To(gomega.Succeed())
		gomega.Expect(reloaded.Name).To(gomega.Equal("business"))
	})

	ginkgo.It("rolls back a failed transaction", func() {
		err := orm.Transaction(func(tx sql.ORM) error {
			if err := tx.Create(&ledgerEntry{Resource: "plans", Name: "temp"}).Error(); err != nil {
				return err
			}
			return errors.New("abort")
		})
		gomega.Expect(err).To(gomega.MatchError("abort"))

		var count int64
		gomega.Expect(orm.WithContext(ctx).Model(&ledgerEntry{}).Count(&count).Error()).To(gomega.Succeed())
		gomega.Expect(count).To(gomega.BeZero())
	})

	ginkgo.It("fails statements whose deadline already passed", func() {
		expired, cancel := context.WithDeadline(ctx, time.Now().Add(-time.Second))
		defer cancel()

		var entries []ledgerEntry
		err := orm.WithTimeout(expired, time.Second).Find(&entries).Error()
		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})
