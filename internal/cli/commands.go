package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	pulse "github.com/pulsesocial/pulse-go"
)

// dispatch runs one command line. It returns false when the REPL should end.
func (a *App) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return false
	case "help":
		a.printHelp()
	case "login":
		err = a.cmdLogin(ctx)
	case "register":
		err = a.cmdRegister(ctx)
	case "logout":
		a.session.Logout()
		fmt.Fprintln(a.out, "logged out")
	case "whoami":
		a.cmdWhoami()
	case "feed":
		err = a.cmdFeed(ctx, args)
	case "mine":
		err = a.cmdMine(ctx)
	case "show":
		err = a.cmdShow(ctx, args)
	case "post":
		err = a.cmdPost(ctx)
	case "comment":
		err = a.cmdComment(ctx, args)
	case "like":
		err = a.cmdLike(ctx, args)
	case "delete":
		err = a.cmdDelete(ctx, args)
	case "trending":
		err = a.cmdTrending(ctx)
	case "tag":
		err = a.cmdTag(ctx, args)
	case "upload":
		err = a.cmdUpload(ctx, args)
	case "draft":
		err = a.cmdDraft(ctx)
	case "rewrite":
		err = a.cmdRewrite(ctx)
	default:
		fmt.Fprintf(a.out, "unknown command %q; type 'help'\n", cmd)
	}
	if err != nil {
		// Errors reach the user as the backend's message, nothing more.
		fmt.Fprintf(a.out, "error: %v\n", err)
	}
	return true
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  login                 log in with username/password
  register              create a new account
  logout                forget the stored credential
  whoami                show the current session
  feed [n]              show the public feed (default 20)
  mine                  show my posts
  show <id>             show a post with its comments
  post                  publish a new post
  comment <id>          comment on a post
  like <id>             toggle a like
  delete <id>           delete one of my posts
  trending              show trending hashtags
  tag <tag>             show posts for a hashtag
  upload <path> [desc]  upload an image
  draft                 AI-draft a post from a topic
  rewrite               AI-rewrite a piece of text
  quit                  leave
`)
}

func (a *App) cmdLogin(ctx context.Context) error {
	username, err := promptLine(a.reader, "username: ", a.out)
	if err != nil {
		return err
	}
	password, err := promptPassword("password: ", a.out)
	if err != nil {
		return err
	}
	if err := a.session.Login(ctx, username, password); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "logged in as @%s\n", a.session.User().Username)
	if exp, ok := a.session.CredentialExpiry(); ok {
		fmt.Fprintf(a.out, "credential expires %s\n", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *App) cmdRegister(ctx context.Context) error {
	var req pulse.RegisterRequest
	var err error
	if req.Username, err = promptLine(a.reader, "username: ", a.out); err != nil {
		return err
	}
	if req.Email, err = promptLine(a.reader, "email: ", a.out); err != nil {
		return err
	}
	if req.FirstName, err = promptLine(a.reader, "first name: ", a.out); err != nil {
		return err
	}
	if req.LastName, err = promptLine(a.reader, "last name: ", a.out); err != nil {
		return err
	}
	if req.Password, err = promptPassword("password: ", a.out); err != nil {
		return err
	}
	if err := a.session.Register(ctx, req); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "account created; log in with 'login'")
	return nil
}

func (a *App) cmdWhoami() {
	switch a.session.State() {
	case pulse.StateAuthenticated:
		u := a.session.User()
		fmt.Fprintf(a.out, "@%s (id %d)", u.Username, u.ID)
		if u.Email != "" {
			fmt.Fprintf(a.out, " <%s>", u.Email)
		}
		fmt.Fprintln(a.out)
		if exp, ok := a.session.CredentialExpiry(); ok {
			fmt.Fprintf(a.out, "credential expires %s\n", exp.Local().Format("2006-01-02 15:04"))
		}
	default:
		fmt.Fprintln(a.out, "anonymous")
	}
}

func (a *App) cmdFeed(ctx context.Context, args []string) error {
	limit := 20
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("usage: feed [n]")
		}
		limit = n
	}
	feed, err := a.client.Posts.Feed(ctx, pulse.PageOptions{Limit: limit})
	if err != nil {
		return err
	}
	a.printFeed(feed)
	return nil
}

func (a *App) cmdMine(ctx context.Context) error {
	feed, err := a.client.Users.MyPosts(ctx, pulse.PageOptions{Limit: 30})
	if err != nil {
		return err
	}
	a.printFeed(feed)
	return nil
}

func (a *App) cmdShow(ctx context.Context, args []string) error {
	id, err := parseID(args, "show")
	if err != nil {
		return err
	}
	post, err := a.client.Posts.Get(ctx, id)
	if err != nil {
		return err
	}
	a.printPost(post)
	comments, err := a.client.Posts.Comments(ctx, id, pulse.PageOptions{Limit: 50})
	if err != nil {
		return err
	}
	for _, c := range comments {
		fmt.Fprintf(a.out, "    @%s: %s\n", c.Owner.Username, c.Content)
	}
	return nil
}

func (a *App) cmdPost(ctx context.Context) error {
	content, err := promptLine(a.reader, "content: ", a.out)
	if err != nil {
		return err
	}
	resp, err := a.client.Posts.Create(ctx, pulse.PostCreateRequest{Content: content})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "published post %d\n", resp.ID)
	return nil
}

func (a *App) cmdComment(ctx context.Context, args []string) error {
	id, err := parseID(args, "comment")
	if err != nil {
		return err
	}
	content, err := promptLine(a.reader, "comment: ", a.out)
	if err != nil {
		return err
	}
	if _, err := a.client.Posts.AddComment(ctx, id, content); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "comment published")
	return nil
}

func (a *App) cmdLike(ctx context.Context, args []string) error {
	id, err := parseID(args, "like")
	if err != nil {
		return err
	}
	result, err := a.client.Posts.ToggleLike(ctx, id)
	if err != nil {
		return err
	}
	if result.Liked {
		fmt.Fprintf(a.out, "liked (%d)\n", result.LikeCount)
	} else {
		fmt.Fprintf(a.out, "unliked (%d)\n", result.LikeCount)
	}
	return nil
}

func (a *App) cmdDelete(ctx context.Context, args []string) error {
	id, err := parseID(args, "delete")
	if err != nil {
		return err
	}
	if err := a.client.Posts.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "deleted")
	return nil
}

func (a *App) cmdTrending(ctx context.Context) error {
	tags, err := a.client.Hashtags.Trending(ctx, 10)
	if err != nil {
		return err
	}
	for _, tag := range tags.Items {
		fmt.Fprintf(a.out, "#%-20s %d\n", tag.Tag, tag.Count)
	}
	return nil
}

func (a *App) cmdTag(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: tag <tag>")
	}
	feed, err := a.client.Hashtags.Posts(ctx, args[0], pulse.PageOptions{Limit: 20})
	if err != nil {
		return err
	}
	a.printFeed(feed)
	return nil
}

func (a *App) cmdUpload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: upload <path> [description]")
	}
	path := args[0]
	description := strings.Join(args[1:], " ")
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := a.client.Images.Upload(ctx, description, filepath.Base(path), f); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "uploaded")
	return nil
}

func (a *App) cmdDraft(ctx context.Context) error {
	topic, err := promptLine(a.reader, "topic: ", a.out)
	if err != nil {
		return err
	}
	tone, err := promptLine(a.reader, "tone (optional): ", a.out)
	if err != nil {
		return err
	}
	draft, err := a.client.AI.GeneratePost(ctx, pulse.GeneratePostRequest{
		Topic:     topic,
		Tone:      tone,
		MaxLength: 280,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, draft.Content)
	if len(draft.SuggestedHashtags) > 0 {
		fmt.Fprintln(a.out, strings.Join(draft.SuggestedHashtags, " "))
	}
	publish, err := promptLine(a.reader, "publish? [y/N]: ", a.out)
	if err != nil {
		return err
	}
	if strings.EqualFold(publish, "y") {
		content := draft.Content
		if len(draft.SuggestedHashtags) > 0 {
			content += "\n" + strings.Join(draft.SuggestedHashtags, " ")
		}
		resp, err := a.client.Posts.Create(ctx, pulse.PostCreateRequest{
			Content:             content,
			Source:              pulse.PostSourceAIAssist,
			GeneratedFromPrompt: topic,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "published post %d\n", resp.ID)
	}
	return nil
}

func (a *App) cmdRewrite(ctx context.Context) error {
	text, err := promptLine(a.reader, "text: ", a.out)
	if err != nil {
		return err
	}
	mode, err := promptLine(a.reader, "mode [grammar/improve/shorten/expand]: ", a.out)
	if err != nil {
		return err
	}
	resp, err := a.client.AI.RewritePost(ctx, pulse.RewritePostRequest{
		Text: text,
		Mode: pulse.RewriteMode(mode),
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, resp.RewrittenText)
	return nil
}

func (a *App) printFeed(feed pulse.Feed) {
	if len(feed.Items) == 0 {
		fmt.Fprintln(a.out, "nothing here yet")
		return
	}
	for _, post := range feed.Items {
		a.printPost(post)
	}
}

func (a *App) printPost(post pulse.Post) {
	fmt.Fprintf(a.out, "[%d] @%s: %s", post.ID, post.Owner.Username, post.Content)
	extras := make([]string, 0, 3)
	if post.LikeCount > 0 {
		liked := ""
		if post.LikedByMe {
			liked = "*"
		}
		extras = append(extras, fmt.Sprintf("%d likes%s", post.LikeCount, liked))
	}
	if post.CommentCount > 0 {
		extras = append(extras, fmt.Sprintf("%d comments", post.CommentCount))
	}
	if len(post.Hashtags) > 0 {
		extras = append(extras, strings.Join(post.Hashtags, " "))
	}
	if len(extras) > 0 {
		fmt.Fprintf(a.out, "  (%s)", strings.Join(extras, ", "))
	}
	fmt.Fprintln(a.out)
}

func parseID(args []string, cmd string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s <id>", cmd)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("usage: %s <id>", cmd)
	}
	return id, nil
}
