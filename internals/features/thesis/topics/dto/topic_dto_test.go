package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTopicProposal() TopicProposeDTO {
	return TopicProposeDTO{
		TopicTitle: "Sistem Rekomendasi Dosen Pembimbing",
		TopicDescription: "Membangun sistem rekomendasi dosen pembimbing skripsi " +
			"berbasis kecocokan bidang riset dan riwayat bimbingan sebelumnya.",
	}
}

func TestTopicProposeValidation(t *testing.T) {
	v := validator.New()

	t.Run("payload valid lolos", func(t *testing.T) {
		p := validTopicProposal()
		assert.NoError(t, v.Struct(p))
	})

	t.Run("judul terlalu pendek ditolak", func(t *testing.T) {
		p := validTopicProposal()
		p.TopicTitle = "Skripsi"
		assert.Error(t, v.Struct(p))
	})

	t.Run("deskripsi terlalu pendek ditolak", func(t *testing.T) {
		p := validTopicProposal()
		p.TopicDescription = "Terlalu singkat"
		assert.Error(t, v.Struct(p))
	})

	t.Run("max members di luar 1..5 ditolak", func(t *testing.T) {
		p := validTopicProposal()
		six := 6
		p.TopicMaxMembers = &six
		assert.Error(t, v.Struct(p))

		zero := 0
		p.TopicMaxMembers = &zero
		assert.Error(t, v.Struct(p))
	})

	t.Run("instructor id bukan uuid ditolak", func(t *testing.T) {
		p := validTopicProposal()
		bad := "bukan-uuid"
		p.TopicInstructorID = &bad
		assert.Error(t, v.Struct(p))
	})
}

func TestTopicProposeNormalize(t *testing.T) {
	req := "  Mohon kesediaan Bapak menjadi pembimbing.  "
	p := TopicProposeDTO{
		TopicTitle:              "  Sistem Rekomendasi Dosen Pembimbing  ",
		TopicDescription:        "  deskripsi panjang yang cukup untuk lolos validasi minimal lima puluh karakter.  ",
		TopicAdvisorRequestText: &req,
	}
	p.Normalize()

	assert.Equal(t, "Sistem Rekomendasi Dosen Pembimbing", p.TopicTitle)
	require.NotNil(t, p.TopicAdvisorRequestText)
	assert.Equal(t, "Mohon kesediaan Bapak menjadi pembimbing.", *p.TopicAdvisorRequestText)
}

func TestDecisionDTOValidation(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(MemberDecisionDTO{Action: "approve"}))
	assert.NoError(t, v.Struct(MemberDecisionDTO{Action: "reject"}))
	assert.Error(t, v.Struct(MemberDecisionDTO{Action: "cancel"}))
	assert.Error(t, v.Struct(MemberDecisionDTO{}))

	assert.NoError(t, v.Struct(TopicDecisionDTO{Status: "approved"}))
	assert.NoError(t, v.Struct(TopicDecisionDTO{Status: "need_revision"}))
	assert.Error(t, v.Struct(TopicDecisionDTO{Status: "pending"}))
}
