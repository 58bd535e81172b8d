package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/presskit/internal/filex"
	"github.com/dmitrijs2005/presskit/internal/netx"
	"github.com/dmitrijs2005/presskit/internal/server/models"
)

func (a *App) ListKits(ctx context.Context) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	kits, err := a.client.ListPressKits(ctx)
	if err != nil {
		return a.report(ctx, err)
	}
	if len(kits) == 0 {
		fmt.Fprintln(a.out, "No press kits yet, try 'create <title>'")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSLUG\tPUBLISHED\tVIEWS")
	for _, k := range kits {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\t%d\n", k.ID, k.Title, k.Slug, k.IsPublished, k.ViewCount)
	}
	return tw.Flush()
}

func (a *App) CreateKit(ctx context.Context, title string) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	if title == "" {
		var err error
		if title, err = GetSimpleText(a.reader, "Title", a.out); err != nil {
			return a.report(ctx, err)
		}
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	kit, err := a.client.CreatePressKit(ctx, title)
	if err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "Created %s (%s)\n  %s\n", kit.Title, kit.ID, kit.ShareableURL)
	return nil
}

func (a *App) ShowKit(ctx context.Context, id string) error {
	return a.kitCommand(ctx, id, a.client.GetPressKit)
}

func (a *App) PublishKit(ctx context.Context, id string) error {
	return a.kitCommand(ctx, id, a.client.PublishPressKit)
}

func (a *App) UnpublishKit(ctx context.Context, id string) error {
	return a.kitCommand(ctx, id, a.client.UnpublishPressKit)
}

func (a *App) kitCommand(ctx context.Context, id string, call func(context.Context, string) (*models.PressKit, error)) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	kit, err := call(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	printKit(a, kit)
	return nil
}

func (a *App) DeleteKit(ctx context.Context, id string) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.client.DeletePressKit(ctx, id); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintln(a.out, "Deleted", id)
	return nil
}

// UploadLogo sends the file straight to object storage and then points the
// kit's logo at the stored key.
func (a *App) UploadLogo(ctx context.Context, id, path string) error {
	if err := a.requireLogin(ctx); err != nil {
		return err
	}
	data, contentType, err := filex.ReadUpload(path, a.config.MaxUploadBytes)
	if err != nil {
		return a.report(ctx, err)
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	upload, err := a.client.PresignLogoUpload(ctx, id)
	if err != nil {
		return a.report(ctx, err)
	}
	if err := netx.UploadToPresignedURL(ctx, upload.URL, data, contentType); err != nil {
		return a.report(ctx, err)
	}
	if _, err := a.client.SetLogo(ctx, id, upload.Key); err != nil {
		return a.report(ctx, err)
	}
	fmt.Fprintf(a.out, "Logo uploaded (%d bytes, %s)\n", len(data), contentType)
	return nil
}

func (a *App) ViewPublished(ctx context.Context, slug string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	kit, err := a.client.GetPublishedPressKit(ctx, slug)
	if err != nil {
		return a.report(ctx, err)
	}
	printKit(a, kit)
	return nil
}

func printKit(a *App, k *models.PressKit) {
	state := "draft"
	if k.IsPublished {
		state = "published"
	}
	fmt.Fprintf(a.out, "%s [%s] %s\n  slug: %s\n  url: %s\n  views: %d\n", k.Title, state, k.ID, k.Slug, k.ShareableURL, k.ViewCount)
	for _, s := range k.Sections {
		hidden := ""
		if !s.IsVisible {
			hidden = " (hidden)"
		}
		fmt.Fprintf(a.out, "  - %d %s: %s%s\n", s.Order, s.Type, s.Title, hidden)
	}
	for _, l := range k.SocialLinks {
		fmt.Fprintf(a.out, "  * %s %s\n", l.Platform, l.URL)
	}
}
