package live

import (
	"fmt"
	"strings"

	"cosmolive/directory"

	"github.com/bwmarrin/discordgo"
)

const (
	// OptionMember is the required member choice on announce commands
	OptionMember = "member"
	// OptionMessage is the optional free-form note on announce commands
	OptionMessage = "message"
)

// AnnounceArgs are the parsed options of an announce command
type AnnounceArgs struct {
	Group  string
	Member string
	Note   string
}

// ParseAnnounceArgs maps an announce command to its group and reads its options.
// The member is validated against the directory; Discord's choice list is not trusted.
func ParseAnnounceArgs(dir *directory.Directory, data discordgo.ApplicationCommandInteractionData) (AnnounceArgs, error) {
	group, ok := dir.GroupForCommand(data.Name)
	if !ok {
		return AnnounceArgs{}, fmt.Errorf("%w: no group for command %q", directory.ErrUnknownGroup, data.Name)
	}

	args := AnnounceArgs{Group: group.Name}

	for _, opt := range data.Options {
		if opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		switch opt.Name {
		case OptionMember:
			args.Member = opt.StringValue()
		case OptionMessage:
			args.Note = strings.TrimSpace(opt.StringValue())
		}
	}

	if err := dir.Validate(args.Group, args.Member); err != nil {
		return AnnounceArgs{}, err
	}

	return args, nil
}
